package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	memorymap "github.com/goliatone/go-memorymap"
	"github.com/goliatone/go-memorymap/pkg/config"
	"github.com/goliatone/go-memorymap/pkg/orchestrator"
)

// Settings keys. Flags of the same meaning override the file.
const (
	keyFormConfig = "form_config"
	keyLocale     = "locale"
	keyTimeout    = "timeout"
	keyKMLURL     = "kml_url"
	keyListen     = "listen"
	keyLogFile    = "log_file"
	keyTemplates  = "templates_dir"

	defaultListen = "127.0.0.1:8080"
)

var flagKeys = map[string]string{
	"form":      keyFormConfig,
	"locale":    keyLocale,
	"timeout":   keyTimeout,
	"kml-url":   keyKMLURL,
	"listen":    keyListen,
	"log-file":  keyLogFile,
	"templates": keyTemplates,
}

type settings struct {
	FormConfig string
	Locale     string
	Timeout    time.Duration
	KMLURL     string
	Listen     string
	LogFile    string
	Templates  string
}

// loadSettings reads path (when set) and overlays flags that were given.
// Environment variables are not consulted.
func loadSettings(path string, flags *pflag.FlagSet) (settings, error) {
	v := viper.New()
	v.SetDefault(keyListen, defaultListen)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return settings{}, fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	return settings{
		FormConfig: v.GetString(keyFormConfig),
		Locale:     v.GetString(keyLocale),
		Timeout:    v.GetDuration(keyTimeout),
		KMLURL:     v.GetString(keyKMLURL),
		Listen:     v.GetString(keyListen),
		LogFile:    v.GetString(keyLogFile),
		Templates:  v.GetString(keyTemplates),
	}, nil
}

func openLogger(path string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(fallback, "memorymap ", log.LstdFlags), nil, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "memorymap ", log.LstdFlags), f, nil
}

// orchestrator loads the form mapping named by the settings and wires the
// deployment.
func (a *app) orchestrator() (*orchestrator.Orchestrator, error) {
	if a.settings.FormConfig == "" {
		return nil, errors.New("no form mapping: set form_config or pass --form")
	}
	form, err := memorymap.LoadForm(a.settings.FormConfig)
	if err != nil {
		return nil, err
	}
	if a.settings.Timeout > 0 {
		form.Timeout = config.Duration(a.settings.Timeout)
	}
	return memorymap.New(form,
		orchestrator.WithLocale(a.settings.Locale),
		orchestrator.WithLogger(a.logger),
		orchestrator.WithEndpoint(a.endpoint),
	)
}
