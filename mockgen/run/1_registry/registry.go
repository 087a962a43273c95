// Package registry records mockable interface declarations across a whole
// generator process, so later generation calls can resolve base interfaces
// that were declared elsewhere. It also allocates the numeric interface ids
// that tie generated mocks to the verification engine.
package registry

import (
	"sync"
	"sync/atomic"

	"github.com/dave/dst"
)

// Declaration is one registered mockable interface: its declaration site's
// syntax plus the package-level function declarations attached to it as
// receiver-less members.
type Declaration struct {
	// Name is the interface's unqualified name, the registry key.
	Name string
	// ModPath is the module path the interface was registered under.
	ModPath string
	// TypeParams are the interface's type parameters, promoted to type
	// parameters of the generated mock.
	TypeParams *dst.FieldList
	// Iface is the interface type literal.
	Iface *dst.InterfaceType
	// Statics are the receiver-less members attached to the interface.
	Statics []*dst.FuncDecl
	// SourceImports are the imports of the file the interface came from.
	SourceImports []*dst.ImportSpec
}

// Key returns the registration key: the name qualified by the module path
// the declaration was registered under.
func (d Declaration) Key() string {
	return Qualified(d.ModPath, d.Name)
}

// Qualified renders the registry key for a name under a module path. Empty
// and "self" paths mean the target's own package, keyed by the bare name.
func Qualified(modPath, name string) string {
	if modPath == "" || modPath == "self" {
		return name
	}

	return modPath + "." + name
}

// unexported variables.
var (
	mu       sync.Mutex
	declared = map[string]Declaration{}

	nextID atomic.Int64
)

// Register records a declaration under its qualified key. Registering the
// same qualified key again replaces the earlier declaration; the same name
// under another module path is a separate entry.
func Register(decl Declaration) {
	mu.Lock()
	defer mu.Unlock()

	declared[decl.Key()] = decl
}

// Lookup returns the declaration registered under exactly key.
func Lookup(key string) (Declaration, bool) {
	mu.Lock()
	defer mu.Unlock()

	decl, ok := declared[key]

	return decl, ok
}

// NextInterfaceID allocates a fresh interface id. Ids are unique across
// the whole process regardless of which goroutine asks.
func NextInterfaceID() int {
	return int(nextID.Add(1))
}
