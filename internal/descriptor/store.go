package descriptor

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// EmbeddedFS is a package-level variable that can be set with embedded
// descriptor files (see descriptors/embed.go).
var EmbeddedFS embed.FS

// Store loads and holds the descriptor set for this server instance. It is
// populated once at startup; the executor and linter read from it without
// further coordination.
type Store struct {
	configDir   string
	descriptors []*Descriptor
}

// NewStore creates a store reading from the given config directory.
func NewStore(configDir string) *Store {
	return &Store{
		configDir:   configDir,
		descriptors: make([]*Descriptor, 0),
	}
}

// Load walks the config tree and parses every YAML descriptor, embedded
// filesystem first with OS-filesystem fallback for development. Each file is
// structurally validated before it is accepted; one broken file fails the
// whole load so a half-loaded descriptor set never serves traffic.
func (s *Store) Load() error {
	descriptors, err := WalkConfigDirectory(s.configDir)
	if err != nil {
		return fmt.Errorf("failed to load descriptors from config directory: %w", err)
	}

	// Exposed tool names are flat: the agent sees "ext-<name>" with no tenant
	// segment, so a name may exist only once across the whole batch.
	names := make(map[string]string, len(descriptors))
	for _, d := range descriptors {
		prevTenant, ok := names[d.Name]
		if !ok {
			names[d.Name] = d.TenantID
			continue
		}
		if prevTenant == d.TenantID {
			return fmt.Errorf("duplicate descriptor name %q in tenant %q", d.Name, d.TenantID)
		}
		return fmt.Errorf("descriptor name %q is defined by both tenant %q and tenant %q; exposed tool names are not tenant-qualified, rename one", d.Name, prevTenant, d.TenantID)
	}

	s.descriptors = descriptors
	slog.Info("loaded descriptors", "count", len(descriptors), "configDir", s.configDir)
	return nil
}

// Count returns the number of loaded descriptors.
func (s *Store) Count() int {
	return len(s.descriptors)
}

// All returns every loaded descriptor, enabled or not.
func (s *Store) All() []*Descriptor {
	return s.descriptors
}

// Enabled returns the descriptors to expose, highest priority first with a
// stable name tiebreak.
func (s *Store) Enabled() []*Descriptor {
	enabled := make([]*Descriptor, 0, len(s.descriptors))
	for _, d := range s.descriptors {
		if d.IsEnabled() {
			enabled = append(enabled, d)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		if enabled[i].Priority != enabled[j].Priority {
			return enabled[i].Priority > enabled[j].Priority
		}
		return enabled[i].Name < enabled[j].Name
	})
	return enabled
}

// Get returns the descriptor with the given name, or nil.
func (s *Store) Get(name string) *Descriptor {
	for _, d := range s.descriptors {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// WalkConfigDirectory loads all YAML descriptor definitions. It first
// attempts the embedded filesystem, falling back to the OS filesystem when
// the binary was built without embedded descriptors.
func WalkConfigDirectory(configDir string) ([]*Descriptor, error) {
	descriptors, err := walkEmbeddedConfigs()
	if err == nil && len(descriptors) > 0 {
		slog.Info("loaded descriptors from embedded filesystem", "count", len(descriptors))
		return descriptors, nil
	}
	return walkOSFilesystem(configDir)
}

func walkEmbeddedConfigs() ([]*Descriptor, error) {
	var descriptors []*Descriptor

	if _, err := fs.Stat(EmbeddedFS, "."); err != nil {
		return nil, fmt.Errorf("embedded FS not available")
	}

	err := fs.WalkDir(EmbeddedFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(d.Name()) {
			return nil
		}

		data, err := EmbeddedFS.ReadFile(path)
		if err != nil {
			slog.Error("failed to read embedded descriptor", "path", path, "error", err)
			return err
		}

		desc, err := parseDescriptor(data, path)
		if err != nil {
			slog.Error("failed to parse embedded descriptor", "path", path, "error", err)
			return err
		}

		descriptors = append(descriptors, desc)
		slog.Info("loaded descriptor from embedded FS", "descriptor", desc.Name, "tenantId", desc.TenantID, "path", path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded descriptors: %w", err)
	}
	return descriptors, nil
}

func walkOSFilesystem(configDir string) ([]*Descriptor, error) {
	var descriptors []*Descriptor

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		slog.Warn("descriptor directory does not exist", "dir", configDir)
		return descriptors, nil
	}

	err := filepath.Walk(configDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Error("error accessing path", "path", path, "error", err)
			return err
		}
		if info.IsDir() || !isYAML(info.Name()) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("failed to read descriptor file", "path", path, "error", err)
			return err
		}

		relPath, _ := filepath.Rel(configDir, path)
		desc, err := parseDescriptor(data, relPath)
		if err != nil {
			slog.Error("failed to parse descriptor", "path", path, "error", err)
			return err
		}

		descriptors = append(descriptors, desc)
		slog.Info("loaded descriptor from filesystem", "descriptor", desc.Name, "tenantId", desc.TenantID, "path", path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk descriptor directory: %w", err)
	}
	return descriptors, nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// parseDescriptor parses and validates one YAML descriptor file. The raw
// document goes through the structural schema validator first; only
// structurally valid documents are decoded into the typed model. Semantic
// template correctness is the linter's job, not the store's.
func parseDescriptor(data []byte, path string) (*Descriptor, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	verdict, err := ValidateStructure(raw)
	if err != nil {
		return nil, fmt.Errorf("structural validation failed: %w", err)
	}
	if !verdict.Valid {
		return nil, fmt.Errorf("descriptor %s is structurally invalid: %s", path, strings.Join(verdict.Issues, "; "))
	}

	var desc Descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to decode descriptor: %w", err)
	}

	if desc.TenantID == "" {
		desc.TenantID = deriveTenantFromPath(path)
	}
	return &desc, nil
}

// deriveTenantFromPath extracts the tenant from the file path.
// Example: "descriptors/config/acme/create-refund.yaml" -> "acme".
func deriveTenantFromPath(path string) string {
	path = filepath.ToSlash(path)
	parts := strings.Split(path, "/")

	for i, part := range parts {
		if part == "config" && i+2 < len(parts) {
			return parts[i+1]
		}
	}
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return ""
}
