package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// SetLogger replaces the logger used for reload diagnostics.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log = logger.With().Str("component", "config").Logger()
}

// Watch starts watching the config file. Callbacks registered with
// OnConfigChange receive each reloaded configuration that differs from
// the previous one.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(m.handleConfigEvent)
	m.viper.WatchConfig()

	m.watching = true
	m.log.Debug().Str("file", m.viper.ConfigFileUsed()).Msg("watching config file")
	return nil
}

func (m *Manager) handleConfigEvent(e fsnotify.Event) {
	// Editors touch permissions on save; only content changes matter.
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}

	m.mu.Lock()
	log := m.log
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

	if m.skipNextReload {
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to sync viper after save")
		}
		m.notifyCallbacksLocked()
		return
	}

	previous := m.config
	if err := m.reload(); err != nil {
		log.Warn().Err(err).Msg("config reload rejected, keeping previous values")
		m.mu.Unlock()
		return
	}
	if previous != nil && *m.config == *previous {
		m.mu.Unlock()
		return
	}

	log.Info().Msg("config reloaded")
	m.notifyCallbacksLocked()
}

// notifyCallbacksLocked hands every callback its own copy of the config.
// Called with m.mu held; releases it before running the callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := *m.config
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, callback := range callbacks {
		c := config
		callback(&c)
	}
}

// OnConfigChange registers a callback for configuration reloads.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file. Must be called with m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.buildConfig()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}
