package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/dshills/edconf/internal/config/defaults"
	"github.com/dshills/edconf/internal/config/layer"
	"github.com/dshills/edconf/internal/config/loader"
	"github.com/dshills/edconf/internal/config/notify"
	"github.com/dshills/edconf/internal/paths"
)

// DefaultUserExt is the extension of user override files.
const DefaultUserExt = ".cfg"

// Registry owns one DomainStore per domain and resolves options across them.
//
// A Registry is created once by the host and passed to whatever needs
// configuration. Several registries over different directories can coexist.
// Registry is not safe for concurrent use.
type Registry struct {
	stores [len(domainNames)]*DomainStore

	defaultsFS  loader.FileSystem
	defaultsDir string
	userFS      loader.FileSystem
	userDir     string
	userExt     string

	logger   *log.Logger
	notifier *notify.Notifier
}

// Option configures a Registry.
type Option func(*Registry)

// WithDefaults serves the shipped defaults from fsys under dir.
func WithDefaults(fsys loader.FileSystem, dir string) Option {
	return func(r *Registry) {
		r.defaultsFS = fsys
		r.defaultsDir = dir
	}
}

// WithDefaultsDir reads the shipped defaults from a directory on disk
// instead of the embedded copies.
func WithDefaultsDir(dir string) Option {
	return WithDefaults(loader.NewReadOnlyFS(os.DirFS(dir)), ".")
}

// WithUserDir sets the directory holding user override files.
func WithUserDir(dir string) Option {
	return func(r *Registry) {
		r.userDir = dir
	}
}

// WithUserFS sets the file system user override files live on.
func WithUserFS(fsys loader.FileSystem) Option {
	return func(r *Registry) {
		r.userFS = fsys
	}
}

// WithUserFormat sets the extension of user override files
// (".cfg", ".toml" or ".yaml").
func WithUserFormat(ext string) Option {
	return func(r *Registry) {
		r.userExt = ext
	}
}

// WithLogger sets the logger that receives configuration diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithNotifier sets the notifier that receives user-source changes.
func WithNotifier(n *notify.Notifier) Option {
	return func(r *Registry) {
		r.notifier = n
	}
}

// New creates a Registry. Nothing is read until LoadAll is called.
//
// Without options, defaults come from the embedded copies and user files
// live in ~/.idlerc.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{
		userExt: DefaultUserExt,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = log.Default().WithPrefix("config")
	}
	if r.notifier == nil {
		r.notifier = notify.New()
	}
	if r.defaultsFS == nil {
		r.defaultsFS = loader.NewReadOnlyFS(defaults.FS)
		r.defaultsDir = "."
	}
	if r.userFS == nil {
		r.userFS = loader.DefaultFS()
	}
	if r.userDir == "" {
		r.userDir = paths.Resolver{Logger: r.logger}.UserConfigDir(paths.DefaultDirName)
	}

	for _, d := range Domains() {
		def, err := layer.NewFileLayer(d.String()+".default", layer.SourceDefault,
			r.defaultsFS, filepath.Join(r.defaultsDir, d.DefaultFile()))
		if err != nil {
			return nil, err
		}
		user, err := layer.NewFileLayer(d.String()+".user", layer.SourceUser,
			r.userFS, filepath.Join(r.userDir, d.UserFile(r.userExt)))
		if err != nil {
			return nil, err
		}
		r.stores[d] = NewDomainStore(d, def, user, r.logger)
	}
	return r, nil
}

// Store returns the DomainStore for d. It panics if d is not a valid domain.
func (r *Registry) Store(d Domain) *DomainStore {
	d.mustValid()
	return r.stores[d]
}

// Logger returns the registry's logger.
func (r *Registry) Logger() *log.Logger {
	return r.logger
}

// Notifier returns the registry's change notifier.
func (r *Registry) Notifier() *notify.Notifier {
	return r.notifier
}

// UserDir returns the directory holding user override files.
func (r *Registry) UserDir() string {
	return r.userDir
}

// LoadAll loads the default and user sources of every domain. It stops at
// the first domain that fails: a malformed file is fatal for that domain.
func (r *Registry) LoadAll() error {
	for _, d := range Domains() {
		if err := r.stores[d].Load(); err != nil {
			return err
		}
		r.notifier.NotifyDomain(d.String(), notify.ChangeLoad)
	}
	return nil
}

// SaveAllUser writes the user overrides of every domain. Each domain is
// attempted even if an earlier one fails; failures are returned joined,
// each as a *SaveError.
func (r *Registry) SaveAllUser() error {
	var errs []error
	for _, d := range Domains() {
		if err := r.stores[d].Save(); err != nil {
			r.logger.Error("saving user configuration failed", "domain", d, "err", err)
			errs = append(errs, err)
			continue
		}
		r.notifier.NotifyDomain(d.String(), notify.ChangeSave)
	}
	return errors.Join(errs...)
}

// GetOption returns section/option from domain d parsed as kind: the user
// source first, then the default source, then def. Falling through to def
// logs a warning.
func (r *Registry) GetOption(d Domain, section, option string, kind ValueKind, def Value) Value {
	return r.Store(d).Get(section, option, kind, def)
}

// GetString returns a string option.
func (r *Registry) GetString(d Domain, section, option, def string) string {
	return r.GetOption(d, section, option, KindString, StringValue(def)).Str
}

// GetInt returns an integer option.
func (r *Registry) GetInt(d Domain, section, option string, def int) int {
	return r.GetOption(d, section, option, KindInt, IntValue(def)).Int
}

// GetBool returns a boolean option.
func (r *Registry) GetBool(d Domain, section, option string, def bool) bool {
	return r.GetOption(d, section, option, KindBool, BoolValue(def)).Bool
}

// GetSectionList returns the section names of one source of domain d.
func (r *Registry) GetSectionList(set ConfigSet, d Domain) []string {
	return r.Store(d).Layer(set).Sections()
}

// SetUserOption stores a user override and notifies observers when the
// value changed.
func (r *Registry) SetUserOption(d Domain, section, option, value string) (bool, error) {
	store := r.Store(d)
	old, _ := store.User().Get(section, option)
	changed, err := store.Set(section, option, value)
	if err != nil || !changed {
		return changed, err
	}
	r.notifier.NotifySet(d.String(), section, loader.OptionKey(option), old, value)
	return true, nil
}

// RemoveUserOption deletes a user override and notifies observers when one
// existed.
func (r *Registry) RemoveUserOption(d Domain, section, option string) (bool, error) {
	store := r.Store(d)
	old, _ := store.User().Get(section, option)
	removed, err := store.RemoveOption(section, option)
	if err != nil || !removed {
		return removed, err
	}
	r.notifier.NotifyRemove(d.String(), section, loader.OptionKey(option), old)
	return true, nil
}

// CurrentTheme returns the name of the active highlight theme.
func (r *Registry) CurrentTheme() string {
	return r.GetString(DomainMain, "Theme", "name", "")
}

// CurrentKeys returns the name of the active key set.
func (r *Registry) CurrentKeys() string {
	return r.GetString(DomainMain, "Keys", "name", "")
}

// Themes returns a ThemeResolver over this registry.
func (r *Registry) Themes() *ThemeResolver {
	return NewThemeResolver(r)
}

// Keys returns a KeySetResolver over this registry.
func (r *Registry) Keys() *KeySetResolver {
	return NewKeySetResolver(r)
}

// Extensions returns an ExtensionCatalog over this registry.
func (r *Registry) Extensions() *ExtensionCatalog {
	return NewExtensionCatalog(r)
}
