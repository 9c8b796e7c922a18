// Package tui drives the placemark wizard from a terminal using survey
// prompts.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-memorymap/pkg/labels"
	"github.com/goliatone/go-memorymap/pkg/record"
	"github.com/goliatone/go-memorymap/pkg/wizard"
)

type action int

const (
	actionNext action = iota
	actionSubmit
	actionBack
	actionExport
	actionQuit
)

// Session runs one wizard to completion on a PromptDriver.
type Session struct {
	wizard    *wizard.Wizard
	presenter wizard.Presenter
	catalog   labels.Catalog
	driver    PromptDriver
	logger    *log.Logger
	exporter  Exporter
	readFile  func(string) ([]byte, error)
}

// NewSession binds w to a terminal. p must be the presenter w was built
// with; the session notifies through it for failures outside the wizard.
func NewSession(w *wizard.Wizard, p wizard.Presenter, options ...Option) *Session {
	if p == nil {
		p = wizard.NopPresenter{}
	}
	s := &Session{
		wizard:    w,
		presenter: p,
		catalog:   w.Catalog(),
		logger:    log.New(io.Discard, "", 0),
		readFile:  readPhoto,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver()
	}
	return s
}

// Run prompts step by step until the record is submitted. It returns nil
// after a successful submission, ErrAborted when the user quits, and driver
// or context errors as they occur. Rejected advances and failed submissions
// keep the session going.
func (s *Session) Run(ctx context.Context) error {
	s.wizard.Start()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		view := s.wizard.View()
		if err := s.promptStep(ctx, view); err != nil {
			return err
		}

		act, err := s.navigate(ctx, s.wizard.View())
		if err != nil {
			return err
		}
		switch act {
		case actionNext:
			_ = s.wizard.Advance()
		case actionBack:
			s.wizard.Retreat()
		case actionExport:
			s.export()
		case actionQuit:
			return ErrAborted
		case actionSubmit:
			done, err := s.submit(ctx)
			if err != nil || done {
				return err
			}
		}
	}
}

func (s *Session) submit(ctx context.Context) (bool, error) {
	err := s.wizard.Submit(ctx)
	var (
		verr *wizard.ValidationError
		terr *wizard.TransportError
	)
	switch {
	case err == nil, errors.Is(err, wizard.ErrAlreadySubmitted):
		return true, nil
	case errors.As(err, &verr), errors.As(err, &terr), errors.Is(err, wizard.ErrSubmitInFlight):
		s.logger.Printf("tui: submit not completed: %v", err)
		return false, nil
	default:
		return false, err
	}
}

func (s *Session) export() {
	if s.exporter == nil {
		return
	}
	path, err := s.exporter(s.wizard.Record())
	if err != nil {
		s.logger.Printf("tui: export: %v", err)
		s.presenter.Notify(wizard.Notification{Level: wizard.LevelError, Message: s.catalog.UnexpectedError})
		return
	}
	s.presenter.Notify(wizard.Notification{Level: wizard.LevelInfo, Message: s.catalog.Prompts.Exported + path})
}

// promptStep asks for the fields of the current step. A panic while
// prompting is reported as the generic error and the session carries on.
func (s *Session) promptStep(ctx context.Context, view wizard.View) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Printf("tui: recovered panic on step %d: %v", view.Step, rec)
			s.presenter.Notify(wizard.Notification{Level: wizard.LevelError, Message: s.catalog.UnexpectedError})
			err = nil
		}
	}()

	r := s.wizard.Record()
	p := s.catalog.Prompts

	switch view.Step {
	case wizard.StepConsent:
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: p.PrivacyAgreement, Default: r.PrivacyAgreement})
		if err != nil {
			return err
		}
		s.wizard.SetPrivacyAgreement(ok)

	case wizard.StepBasicInfo:
		return s.inputs(ctx, []field{
			{p.Name, r.Name, s.wizard.SetName},
			{p.AdmissionYear, r.AdmissionYear, s.wizard.SetAdmissionYear},
			{p.Department, r.Department, s.wizard.SetDepartment},
		})

	case wizard.StepMapType:
		types := record.MapTypes()
		options := make([]string, len(types))
		current := 0
		for i, m := range types {
			options[i] = s.catalog.MapTypeLabel(m)
			if m == r.MapType {
				current = i
			}
		}
		idx, err := s.driver.Select(ctx, SelectConfig{Message: p.MapType, Options: options, DefaultIndex: current})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(types) && types[idx] != r.MapType {
			return s.wizard.SelectMapType(types[idx])
		}

	case wizard.StepArea:
		return s.promptArea(ctx, view, r)

	case wizard.StepDetails:
		if err := s.inputs(ctx, []field{
			{p.PlaceName, r.PlaceName, s.wizard.SetPlaceName},
		}); err != nil {
			return err
		}
		memory, err := s.driver.TextArea(ctx, TextAreaConfig{Message: p.MemoryContent, Default: r.MemoryContent})
		if err != nil {
			return err
		}
		s.wizard.SetMemoryContent(memory)
		if err := s.inputs(ctx, []field{
			{p.LocationInfo, r.LocationInfo, s.wizard.SetLocationInfo},
		}); err != nil {
			return err
		}
		if err := s.promptPhoto(ctx, r); err != nil {
			return err
		}
		if view.ShowPhrase {
			return s.inputs(ctx, []field{
				{p.UsefulPhrase, r.UsefulPhrase, s.wizard.SetUsefulPhrase},
			})
		}

	case wizard.StepReview:
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: p.Agreement, Default: r.Agreement})
		if err != nil {
			return err
		}
		s.wizard.SetAgreement(ok)
	}
	return nil
}

type field struct {
	message string
	current string
	set     func(string)
}

func (s *Session) inputs(ctx context.Context, fields []field) error {
	for _, f := range fields {
		v, err := s.driver.Input(ctx, InputConfig{Message: f.message, Default: f.current})
		if err != nil {
			return err
		}
		f.set(strings.TrimSpace(v))
	}
	return nil
}

func (s *Session) promptArea(ctx context.Context, view wizard.View, r record.Record) error {
	switch view.AreaPicker {
	case wizard.AreaPickerPrefecture:
		options := s.catalog.Prefectures
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      s.catalog.Prompts.Prefecture,
			Options:      options,
			DefaultIndex: indexOf(options, r.Area),
			PageSize:     12,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			return nil
		}
		return s.wizard.SelectPrefecture(options[idx])

	case wizard.AreaPickerRegion:
		options := make([]string, len(s.catalog.Regions))
		for i, region := range s.catalog.Regions {
			options[i] = region.Label
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      s.catalog.Prompts.Region,
			Options:      options,
			DefaultIndex: indexOf(options, r.Area),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			return nil
		}
		return s.wizard.SelectRegion(s.catalog.Regions[idx].Key)

	default:
		return s.driver.Info(ctx, s.catalog.CampusArea)
	}
}

func (s *Session) promptPhoto(ctx context.Context, r record.Record) error {
	p := s.catalog.Prompts
	types := []record.PhotoType{record.PhotoTypeFile, record.PhotoTypeURL}
	options := []string{p.PhotoTypes[record.PhotoTypeFile], p.PhotoTypes[record.PhotoTypeURL]}
	current := 0
	if r.PhotoType == record.PhotoTypeURL {
		current = 1
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: p.PhotoType, Options: options, DefaultIndex: current})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(types) {
		return nil
	}
	if err := s.wizard.SelectPhotoType(types[idx]); err != nil {
		return err
	}

	if types[idx] == record.PhotoTypeURL {
		url, err := s.driver.Input(ctx, InputConfig{Message: p.PhotoURL, Default: r.PhotoURL})
		if err != nil {
			return err
		}
		s.wizard.SetPhotoURL(strings.TrimSpace(url))
		return nil
	}

	path, err := s.driver.Input(ctx, InputConfig{Message: p.PhotoFile})
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	data, err := s.readFile(path)
	if err != nil {
		s.logger.Printf("tui: read photo %s: %v", path, err)
		s.presenter.Notify(wizard.Notification{Level: wizard.LevelWarning, Message: p.FileUnread})
		return nil
	}
	// Rejections are already reported by the wizard.
	_ = s.wizard.SetPhotoFile(record.Photo{
		Name:        filepath.Base(path),
		Size:        int64(len(data)),
		ContentType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
		Data:        data,
	})
	return nil
}

// readPhoto reads at most one byte past MaxPhotoSize, enough for the size
// check to reject an oversized file without loading all of it.
func readPhoto(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, record.MaxPhotoSize+1))
}

func (s *Session) navigate(ctx context.Context, view wizard.View) (action, error) {
	p := s.catalog.Prompts
	var (
		options []string
		actions []action
	)
	add := func(label string, a action) {
		options = append(options, label)
		actions = append(actions, a)
	}
	if view.ShowNext {
		add(p.Next, actionNext)
	}
	if view.ShowSubmit {
		add(p.Submit, actionSubmit)
	}
	if view.ShowPrev {
		add(p.Back, actionBack)
	}
	if view.Step == wizard.StepReview && s.exporter != nil {
		add(p.ExportCSV, actionExport)
	}
	add(p.Quit, actionQuit)

	idx, err := s.driver.Select(ctx, SelectConfig{Message: p.Navigate, Options: options})
	if err != nil {
		return actionQuit, err
	}
	if idx < 0 || idx >= len(actions) {
		return actionQuit, fmt.Errorf("tui: navigation choice %d out of range", idx)
	}
	return actions[idx], nil
}
