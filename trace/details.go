package trace

import (
	"regexp"
	"sort"
	"strings"
)

type Detailer interface {
	Details() Details
}

var _ Detailer = Details(0)

type Details uint64

func (d Details) Details() Details {
	return d
}

func (d Details) String() string {
	names := make([]string, 0, len(detailsMap))
	for bit, name := range detailsMap {
		if d&bit != 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return strings.Join(names, "|")
}

const (
	GuardGetEvents Details = 1 << iota
	GuardSetEvents
	GuardChangeEvents
	GuardReadEvents
	GuardWriteEvents

	GuardCopyEvents = GuardGetEvents |
		GuardSetEvents |
		GuardChangeEvents

	GuardScopeEvents = GuardReadEvents |
		GuardWriteEvents

	GuardEvents = GuardCopyEvents | GuardScopeEvents

	DetailsAll = ^Details(0) // All bits enabled
)

var (
	detailsMap = map[Details]string{
		GuardEvents: "guarded.value",

		GuardCopyEvents:   "guarded.value.copy",
		GuardGetEvents:    "guarded.value.copy.get",
		GuardSetEvents:    "guarded.value.copy.set",
		GuardChangeEvents: "guarded.value.copy.change",

		GuardScopeEvents: "guarded.value.guard",
		GuardReadEvents:  "guarded.value.guard.read",
		GuardWriteEvents: "guarded.value.guard.write",
	}
	defaultDetails = DetailsAll
)

type matchDetailsOptions struct {
	defaultDetails Details
	posix          bool
}

type matchDetailsOption func(o *matchDetailsOptions)

func WithDefaultDetails(d Details) matchDetailsOption {
	return func(o *matchDetailsOptions) {
		o.defaultDetails = d
	}
}

func WithPOSIXMatch() matchDetailsOption {
	return func(o *matchDetailsOptions) {
		o.posix = true
	}
}

// MatchDetails unions the detail bits whose names match pattern. An
// unparsable pattern or one matching nothing yields the default details,
// DetailsAll unless WithDefaultDetails overrides it.
func MatchDetails(pattern string, opts ...matchDetailsOption) (d Details) {
	o := matchDetailsOptions{
		defaultDetails: defaultDetails,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	compile := regexp.Compile
	if o.posix {
		compile = regexp.CompilePOSIX
	}
	re, err := compile(pattern)
	if err != nil {
		return o.defaultDetails
	}
	for bit, name := range detailsMap {
		if re.MatchString(name) {
			d |= bit
		}
	}
	if d == 0 {
		return o.defaultDetails
	}

	return d
}
