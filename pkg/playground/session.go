// Package playground runs markup operations interactively.
package playground

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-htmlextra/pkg/extension"
)

const quit = "quit"

// Session prompts for an operation and its input, prints the result and
// repeats until the user quits.
type Session struct {
	ext    *extension.Extension
	driver PromptDriver
	logger *zap.Logger
}

// NewSession constructs a Session. A nil logger disables logging.
func NewSession(x *extension.Extension, driver PromptDriver, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{ext: x, driver: driver, logger: logger}
}

// Run loops until the user picks quit, declines to continue or aborts. An
// abort ends the session without error.
func (s *Session) Run(ctx context.Context) error {
	err := s.loop(ctx)
	if errors.Is(err, ErrAborted) {
		s.logger.Debug("playground aborted")
		return nil
	}
	return err
}

func (s *Session) loop(ctx context.Context) error {
	options := append(append([]string(nil), Operations...), quit)
	for {
		idx, err := s.driver.Select(ctx, SelectConfig{Message: "Operation", Options: options, PageSize: len(options)})
		if err != nil {
			return err
		}
		if idx < 0 || options[idx] == quit {
			return nil
		}

		req, err := s.ask(ctx, options[idx])
		if err != nil {
			return err
		}

		out, err := Execute(s.ext, req)
		if err != nil {
			s.logger.Warn("operation failed", zap.String("operation", req.Operation), zap.Error(err))
			out = "error: " + err.Error()
		}
		if err := s.driver.Info(ctx, out); err != nil {
			return err
		}

		again, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Another one?", Default: true})
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) ask(ctx context.Context, op string) (Request, error) {
	req := Request{Operation: op}

	help := "Markup text"
	if op == "html_attributes" {
		help = "YAML attribute set, or a list of sets to merge"
	}
	text, err := s.driver.TextArea(ctx, TextAreaConfig{Message: "Input", Help: help})
	if err != nil {
		return req, err
	}
	req.Text = text

	switch op {
	case "contextualize":
		if req.Term, err = s.driver.Input(ctx, InputConfig{Message: "Term"}); err != nil {
			return req, err
		}
		length, err := s.driver.Input(ctx, InputConfig{
			Message:   "Length",
			Default:   "250",
			Validator: validatePositive,
		})
		if err != nil {
			return req, err
		}
		req.Length, _ = strconv.Atoi(strings.TrimSpace(length))
	case "wrap_text":
		if req.Sequence, err = s.driver.Input(ctx, InputConfig{Message: "Control sequence", Default: "__"}); err != nil {
			return req, err
		}
	}
	return req, nil
}

func validatePositive(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}
