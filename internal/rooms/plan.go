package rooms

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/dmitrijs2005/homeowner/internal/filex"
	"gopkg.in/yaml.v3"
)

// HouseFileName is the file the floor plan is kept in, next to the
// account data.
const HouseFileName = "house.yaml"

// ErrDuplicateRoom is returned by Plan.Add for a name already in use.
var ErrDuplicateRoom = errors.New("room already exists")

// PlanRoom is a room of a Plan.
type PlanRoom struct {
	RoomName string `yaml:"name"`
}

func (r *PlanRoom) Name() string { return r.RoomName }

func (r *PlanRoom) Rename(newName string) { r.RoomName = newName }

// Plan is a flat list of rooms. It is the House used by the CLI.
type Plan struct {
	Rooms []*PlanRoom `yaml:"rooms"`
}

// FindRoom returns the first room called name.
func (p *Plan) FindRoom(name string) (Room, bool) {
	for _, r := range p.Rooms {
		if r.RoomName == name {
			return r, true
		}
	}
	return nil, false
}

// Add appends a room called name.
func (p *Plan) Add(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := p.FindRoom(name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRoom, name)
	}
	p.Rooms = append(p.Rooms, &PlanRoom{RoomName: name})
	return nil
}

// Names returns room names in plan order.
func (p *Plan) Names() []string {
	out := make([]string, 0, len(p.Rooms))
	for _, r := range p.Rooms {
		out = append(out, r.RoomName)
	}
	return out
}

// YAMLStore loads and saves a Plan as YAML. It implements Saver.
type YAMLStore struct {
	path string
}

func NewYAMLStore(dir string) *YAMLStore {
	return &YAMLStore{path: filepath.Join(dir, HouseFileName)}
}

func (s *YAMLStore) Path() string { return s.path }

// Load reads the plan. A missing file yields an empty plan.
func (s *YAMLStore) Load(ctx context.Context) (*Plan, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Plan{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var p Plan
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	p.Rooms = slices.DeleteFunc(p.Rooms, func(r *PlanRoom) bool { return r == nil })
	return &p, nil
}

// SaveHouse writes h, which must be a *Plan.
func (s *YAMLStore) SaveHouse(ctx context.Context, h House) error {
	p, ok := h.(*Plan)
	if !ok {
		return fmt.Errorf("unsupported house type %T", h)
	}

	b, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	if _, err := filex.EnsureDir(filepath.Dir(s.path)); err != nil {
		return err
	}
	return filex.WriteFileAtomic(s.path, b, 0o600)
}

var (
	_ House = (*Plan)(nil)
	_ Saver = (*YAMLStore)(nil)
)
