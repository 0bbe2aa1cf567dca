package empty

type (
	Chan         = chan Struct
	ChanReadonly = <-chan Struct
	Struct       = struct{}
)
