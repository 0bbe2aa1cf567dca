package version

const (
	Major = "1"
	Minor = "0"
	Patch = "0"

	Package = "guarded-go"
)

const (
	Version     = Major + "." + Minor + "." + Patch
	FullVersion = Package + "/" + Version
)
