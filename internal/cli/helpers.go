package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/internal/render"
	"github.com/mesh-intelligence/contacts/internal/sqlite"
	"github.com/mesh-intelligence/contacts/internal/store"
	"github.com/mesh-intelligence/contacts/internal/textfile"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// session is the resolved configuration and the loaded store for one
// command run. The caller must Close it.
type session struct {
	config    types.Config
	persister types.Persister
	store     *store.Store
	styler    render.Styler
	logger    *slog.Logger
}

// openSession resolves configuration, opens the configured backend, and
// loads the store. When strict is false a load failure is logged and the
// session starts with an empty list; otherwise it is returned.
func openSession(cmd *cobra.Command, strict bool) (*session, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	v, err := loadConfig(configDir, cmd)
	if err != nil {
		return nil, userError(fmt.Errorf("load config: %w", err))
	}

	cfg := types.Config{
		Backend:     v.GetString(cfgKeyBackend),
		MaxContacts: v.GetInt(cfgKeyMaxContacts),
	}
	if err := cfg.Validate(); err != nil {
		return nil, userError(fmt.Errorf("invalid config: %w", err))
	}

	mode, err := render.ParseColorMode(v.GetString(cfgKeyColor))
	if err != nil {
		return nil, userError(err)
	}

	level := v.GetString(cfgKeyLogLevel)
	if flags.verbose {
		level = "debug"
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, userError(err)
	}

	cfg.File, err = paths.ResolveDataFile(flags.file, v.GetString(cfgKeyFile), cfg.Backend)
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve contacts file: %w", err))
	}
	logger.Debug("configuration resolved",
		"config_dir", configDir, "backend", cfg.Backend, "file", cfg.File, "max_contacts", cfg.MaxContacts)

	persister, err := openPersister(cfg, logger)
	if err != nil {
		return nil, sysError(err)
	}

	st := store.New(persister, store.WithCapacity(cfg.MaxContacts), store.WithLogger(logger))
	if err := st.Load(); err != nil {
		if strict {
			persister.Close()
			return nil, sysError(err)
		}
		logger.Warn("starting with an empty contact list", "file", cfg.File, "error", err)
	}

	return &session{
		config:    cfg,
		persister: persister,
		store:     st,
		styler:    render.NewStyler(cmd.OutOrStdout(), mode),
		logger:    logger,
	}, nil
}

// Close releases the backend.
func (s *session) Close() error {
	return s.persister.Close()
}

// openPersister creates the backend named in cfg.
func openPersister(cfg types.Config, logger *slog.Logger) (types.Persister, error) {
	switch cfg.Backend {
	case types.BackendText:
		return textfile.New(cfg.File), nil
	case types.BackendSQLite:
		b, err := sqlite.Open(cfg.File, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
}
