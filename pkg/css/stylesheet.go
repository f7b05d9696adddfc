package css

// Selector is a simple selector: optional tag name, optional id, and zero
// or more class names. All present parts must match the element.
type Selector struct {
	TagName string
	ID      string
	Classes []string
}

// Specificity is the (id, class, tag) weight of a selector, compared
// lexicographically.
type Specificity struct {
	IDs     int
	Classes int
	Tags    int
}

func (s Selector) Specificity() Specificity {
	spec := Specificity{Classes: len(s.Classes)}
	if s.ID != "" {
		spec.IDs = 1
	}
	if s.TagName != "" {
		spec.Tags = 1
	}
	return spec
}

// Less reports whether s has strictly lower specificity than other.
func (s Specificity) Less(other Specificity) bool {
	if s.IDs != other.IDs {
		return s.IDs < other.IDs
	}
	if s.Classes != other.Classes {
		return s.Classes < other.Classes
	}
	return s.Tags < other.Tags
}

// Declaration is one property: value pair. Declaration order within a rule
// is significant: later declarations overwrite earlier ones.
type Declaration struct {
	Property string
	Value    Value
}

// Rule pairs a selector list with its declarations. A rule matches an
// element with the specificity of its first matching selector.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Stylesheet is an ordered list of rules. Stylesheet order matters for the
// cascade: at equal specificity, rules from later stylesheets win.
type Stylesheet struct {
	Rules []Rule
}
