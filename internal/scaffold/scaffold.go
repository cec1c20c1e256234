// Package scaffold defines the fixed package layout and the template
// rendering collaborator used to populate its placeholder files.
package scaffold

// Dirs is the fixed set of subdirectories created under every package root.
//
//	build    CMake artifacts and the final binary
//	src      .cpp sources
//	include  .hpp headers
//	config   node configs, params, launch-file selection
//	launch   one or more launch files
var Dirs = []string{"build", "src", "include", "config", "launch"}

// Kind identifies a file the scaffold renders into a new package.
type Kind string

const (
	// KindCMake is the build-configuration file at the package root.
	// The filename casing is historical and load-bearing: existing build
	// tooling globs for exactly "CMakelists.txt".
	KindCMake Kind = "CMakelists.txt"

	// KindReadme is the package README.
	KindReadme Kind = "README.md"
)

// Files lists the files rendered at the package root, in creation order.
var Files = []Kind{KindCMake, KindReadme}

// Context carries the values available to file templates.
type Context struct {
	// Name is the package name
	Name string

	// RelPath is the package path relative to the repository root
	RelPath string

	// Target is the deployment target tag
	Target string
}

// Renderer produces the contents of a scaffold file.
type Renderer interface {
	// Render returns the file contents for the given kind.
	Render(kind Kind, ctx Context) ([]byte, error)
}

// EmptyRenderer renders every file as an empty placeholder. This is the
// default: template content is populated by hand after creation.
type EmptyRenderer struct{}

// Render returns empty contents for every kind.
func (EmptyRenderer) Render(kind Kind, ctx Context) ([]byte, error) {
	return []byte{}, nil
}
