package tool

import "strings"

// Name represents tool name in "<service>-<method>" form where "/" in the
// service name is replaced by "_".
type Name string

func (t Name) Service() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return strings.ReplaceAll(tool[:idx], "_", "/")
	}
	return tool
}

func (t Name) Method() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return tool[idx+1:]
	}
	return ""
}

// Path returns the name in "<service>/<method>" form.
func (t Name) Path() string {
	if method := t.Method(); method != "" {
		return t.Service() + "/" + method
	}
	return t.Service()
}

func (t Name) String() string {
	return string(t)
}

// NewName new name
func NewName(service, method string) Name {
	return Name(strings.ReplaceAll(service, "/", "_") + "-" + method)
}

// Canonical normalises "icon/search", "icon.search" or "icon-search" into the
// canonical tool name.
func Canonical(name string) string {
	if strings.Contains(name, "-") {
		idx := strings.LastIndex(name, "-")
		return NewName(strings.ReplaceAll(name[:idx], "_", "/"), name[idx+1:]).String()
	}
	if idx := strings.LastIndexAny(name, "./"); idx != -1 {
		return NewName(name[:idx], name[idx+1:]).String()
	}
	return name
}
