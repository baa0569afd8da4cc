package content

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/actor"
	dnderr "github.com/KirkDiggler/crucible-engine/internal/errors"
	"github.com/KirkDiggler/crucible-engine/internal/scripting"
)

// Library holds loaded action definitions and actor sheets by ID
type Library struct {
	mu       sync.RWMutex
	compiler *scripting.Compiler
	actions  map[string]action.Definition
	sheets   map[string]actor.Sheet
	sources  map[string]string
}

// NewLibrary creates an empty library that compiles inline scripts with compiler
func NewLibrary(compiler *scripting.Compiler) *Library {
	return &Library{
		compiler: compiler,
		actions:  make(map[string]action.Definition),
		sheets:   make(map[string]actor.Sheet),
		sources:  make(map[string]string),
	}
}

// LoadDirs loads every .yaml and .yml file under each directory
func (l *Library) LoadDirs(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := l.LoadDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// LoadDir loads every .yaml and .yml file under dir in lexical order
func (l *Library) LoadDir(dir string) error {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("content: walk %q: %w", dir, err)
	}

	slices.Sort(paths)
	for _, path := range paths {
		if err := l.LoadFile(path); err != nil {
			return err
		}
	}
	log.Printf("[content] loaded %d file(s) from %s", len(paths), dir)
	return nil
}

// LoadFile reads and loads one content file
func (l *Library) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("content: open %q: %w", path, err)
	}
	defer f.Close()

	if err := l.Load(f, path); err != nil {
		return fmt.Errorf("content: load %q: %w", path, err)
	}
	return nil
}

// Load parses content YAML from r. Nothing from the file is kept unless
// every entry in it is valid. source names the file in duplicate errors.
func (l *Library) Load(r io.Reader, source string) error {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return dnderr.WrapWithCode(err, dnderr.CodeValidation, "decode content yaml")
	}

	defs := make([]action.Definition, 0, len(file.Actions))
	for i := range file.Actions {
		spec := &file.Actions[i]
		if err := spec.validate(); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeValidation, "invalid action")
		}
		hooks, err := l.compile(spec)
		if err != nil {
			return err
		}
		defs = append(defs, spec.definition(hooks))
	}
	for i := range file.Actors {
		if err := file.Actors[i].Validate(); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeValidation, "invalid actor")
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]bool)
	for _, def := range defs {
		key := "action:" + def.ID
		if err := l.checkDuplicate(key, source, seen); err != nil {
			return err
		}
	}
	for _, sheet := range file.Actors {
		key := "actor:" + sheet.ID
		if err := l.checkDuplicate(key, source, seen); err != nil {
			return err
		}
	}

	for _, def := range defs {
		l.actions[def.ID] = def
		l.sources["action:"+def.ID] = source
	}
	for _, sheet := range file.Actors {
		l.sheets[sheet.ID] = sheet
		l.sources["actor:"+sheet.ID] = source
	}
	return nil
}

func (l *Library) checkDuplicate(key, source string, seen map[string]bool) error {
	if seen[key] {
		return dnderr.AlreadyExistsf("%s is defined twice in %s", key, source)
	}
	seen[key] = true
	if prev, ok := l.sources[key]; ok {
		return dnderr.AlreadyExistsf("%s in %s is already defined in %s", key, source, prev)
	}
	return nil
}

func (l *Library) compile(spec *ActionSpec) ([]action.InlineHook, error) {
	if len(spec.Scripts) == 0 {
		return nil, nil
	}
	if l.compiler == nil {
		return nil, dnderr.FailedPreconditionf("action %s has scripts but no compiler is configured", spec.ID)
	}
	hooks, err := l.compiler.CompileAll(spec.Scripts)
	if err != nil {
		return nil, dnderr.Wrapf(err, "action %s", spec.ID)
	}
	return hooks, nil
}

// Definition returns the action definition with the given ID
func (l *Library) Definition(id string) (action.Definition, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	def, ok := l.actions[id]
	if !ok {
		return action.Definition{}, dnderr.NotFoundf("action %s not found", id)
	}
	return def, nil
}

// Sheet returns a copy of the actor sheet with the given ID
func (l *Library) Sheet(id string) (actor.Sheet, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sheet, ok := l.sheets[id]
	if !ok {
		return actor.Sheet{}, dnderr.NotFoundf("actor %s not found", id)
	}
	return sheet, nil
}

// ActionIDs returns every loaded action ID, sorted
func (l *Library) ActionIDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return sortedKeys(l.actions)
}

// ActorIDs returns every loaded actor ID, sorted
func (l *Library) ActorIDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return sortedKeys(l.sheets)
}

// NewActor builds a live actor from a loaded sheet
func (l *Library) NewActor(id string) (*actor.Actor, error) {
	sheet, err := l.Sheet(id)
	if err != nil {
		return nil, err
	}
	return actor.New(sheet)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
