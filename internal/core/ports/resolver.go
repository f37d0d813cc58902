package ports

// ScriptResolver defines the interface for resolving script files.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type ScriptResolver interface {
	// ResolveScripts resolves the given patterns to a sorted list of script paths under root.
	ResolveScripts(patterns []string, root string) ([]string, error)
}
