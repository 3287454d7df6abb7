// Package session drives the interactive select-file, filter, show, save loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"csvsift/internal/filter"
	"csvsift/internal/locator"
	"csvsift/internal/logging"
	"csvsift/internal/present"
	"csvsift/internal/prompt"
	"csvsift/internal/records"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options controls where files are looked up and how names are completed.
type Options struct {
	Dir         string // directory data files are resolved against
	DefaultFile string // used when the file prompt is left empty
	Extension   string // appended to names that lack it
}

// Session is one interactive run. Nothing is shared between sessions.
type Session struct {
	id        string
	opts      Options
	prompter  *prompt.Prompter
	presenter *present.Presenter
	logger    *zap.Logger
}

// New creates a session. A nil logger discards logs.
func New(p *prompt.Prompter, pr *present.Presenter, opts Options, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DefaultFile == "" {
		opts.DefaultFile = "data.csv"
	}
	if opts.Extension == "" {
		opts.Extension = ".csv"
	}
	id := uuid.NewString()
	return &Session{
		id:        id,
		opts:      opts,
		prompter:  p,
		presenter: pr,
		logger:    logger.With(zap.String("session", id)),
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// cycle carries the values one pass through the loop works on.
type cycle struct {
	path    string
	dataset *records.Dataset
	kind    filter.Kind
	result  filter.Result
}

// Run executes the loop until the user quits or input ends.
// Reaching the end of input is a normal termination.
func (s *Session) Run(ctx context.Context) error {
	log := logging.For(s.logger, logging.CategorySession)
	log.Info("session started", zap.String("dir", s.opts.Dir))

	var c cycle
	state := StateFileSelect
	for state != StateTerminated {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := s.step(state, &c)
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Info("input closed", zap.Stringer("state", state))
				return nil
			}
			log.Error("session failed", zap.Stringer("state", state), zap.Error(err))
			return err
		}

		log.Debug("state transition", zap.Stringer("from", state), zap.Stringer("to", next))
		state = next
	}

	log.Info("session ended")
	return nil
}

func (s *Session) step(state State, c *cycle) (State, error) {
	switch state {
	case StateFileSelect:
		path, err := s.selectFile()
		if err != nil {
			return state, err
		}
		c.path = path
		return StateLoaded, nil

	case StateLoaded:
		ds, err := s.load(c.path)
		if err != nil {
			if errors.Is(err, records.ErrNotFound) {
				s.prompter.Warn(fmt.Sprintf("The file %s was not found.", c.path))
			} else {
				s.prompter.Warn(fmt.Sprintf("Could not read %s: %v", c.path, err))
			}
			return StateFileSelect, nil
		}
		c.dataset = ds
		return StateMenu, nil

	case StateMenu:
		kind, quit, err := s.menu()
		if err != nil {
			return state, err
		}
		if quit {
			s.prompter.Say("Terminating program. Goodbye!")
			return StateTerminated, nil
		}
		if kind == 0 {
			return StateMenu, nil
		}
		c.kind = kind
		return StateFiltering, nil

	case StateFiltering:
		pred, err := s.predicate(c.kind)
		if err != nil {
			return state, err
		}
		c.result = filter.Apply(c.dataset, pred)
		logging.For(s.logger, logging.CategoryFilter).Info("filter applied",
			zap.Stringer("kind", c.kind),
			zap.String("predicate", pred.Describe()),
			zap.Int("matched", len(c.result.Records)),
			zap.Int("skipped", c.result.Skipped))
		return StateResultShown, nil

	case StateResultShown:
		if err := s.handleResult(c.dataset, c.result); err != nil {
			return state, err
		}
		c.result = filter.Result{}
		return StateContinuePrompt, nil

	case StateContinuePrompt:
		again, err := prompt.YesNo(s.prompter, "Do you want to return to the main menu? Y/N: ")
		if err != nil {
			return state, err
		}
		if again {
			return StateMenu, nil
		}
		s.prompter.Say("Terminating program. Goodbye!")
		return StateTerminated, nil
	}
	return state, fmt.Errorf("unknown state %s", state)
}

// =============================================================================
// FILE SELECTION
// =============================================================================

func (s *Session) selectFile() (string, error) {
	for {
		line, err := s.prompter.Ask("What's the name of the file that you'd like to search through?: ")
		if err != nil {
			return "", err
		}
		name := locator.Normalize(line, s.opts.DefaultFile, s.opts.Extension)
		path := locator.Resolve(s.opts.Dir, name)
		if locator.Exists(path) {
			return path, nil
		}

		s.prompter.Say("The file '%s' does not exist. Here are the available files:", name)
		files, err := locator.List(s.opts.Dir, s.opts.Extension)
		if err != nil {
			s.prompter.Warn(err.Error())
			continue
		}
		if len(files) == 0 {
			s.prompter.Say("No %s files found in the current directory.", s.fileKind())
			continue
		}
		fmt.Fprintln(s.prompter.Out(), strings.Join(files, "\n"))
	}
}

func (s *Session) fileKind() string {
	return strings.ToUpper(strings.TrimPrefix(s.opts.Extension, "."))
}

func (s *Session) load(path string) (*records.Dataset, error) {
	log := logging.For(s.logger, logging.CategoryLoader)
	ds, err := records.Load(path)
	if err != nil {
		log.Warn("load failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	log.Info("dataset loaded", zap.String("path", path), zap.Int("rows", ds.Len()))
	return ds, nil
}

// =============================================================================
// MENU + PREDICATES
// =============================================================================

// menu shows the options once. A zero kind without quit means the answer was
// invalid and the menu should be shown again.
func (s *Session) menu() (filter.Kind, bool, error) {
	var sb strings.Builder
	sb.WriteString("\nMenu options:\n")
	for _, k := range filter.Kinds {
		fmt.Fprintf(&sb, " %s: %s\n", k.Code(), k.Label())
	}
	io.WriteString(s.prompter.Out(), sb.String())

	line, err := s.prompter.Ask("Enter a number to filter by or type 'Q' to quit: ")
	if err != nil {
		return 0, false, err
	}
	answer := strings.ToUpper(strings.TrimSpace(line))
	if answer == "Q" {
		return 0, true, nil
	}
	if kind, ok := filter.ParseCode(answer); ok {
		return kind, false, nil
	}
	s.prompter.Warn(fmt.Sprintf("Invalid input. Please enter a number between 1 and %d or type 'Q' to quit.", len(filter.Kinds)))
	return 0, false, nil
}

func (s *Session) predicate(kind filter.Kind) (filter.Predicate, error) {
	if kind.IsRange() {
		return s.rangePredicate(kind)
	}
	noun := kind.Noun()
	value, err := prompt.Text(s.prompter,
		fmt.Sprintf("Enter the %s to filter by: ", noun),
		fmt.Sprintf("%s cannot be empty. Please enter a valid %s.", capitalize(noun), noun))
	if err != nil {
		return nil, err
	}
	return filter.NewText(kind, value)
}

func (s *Session) rangePredicate(kind filter.Kind) (filter.Predicate, error) {
	noun := kind.Noun()

	lo, err := prompt.Until(s.prompter, fmt.Sprintf("Enter minimum %s: ", noun),
		prompt.IntParser(fmt.Sprintf("Please enter a valid number for the minimum %s.", noun), func(n int) error {
			if n < 0 {
				return fmt.Errorf("Minimum %s cannot be less than 0. Please enter a valid minimum %s.", noun, noun)
			}
			return nil
		}))
	if err != nil {
		return nil, err
	}

	hi, err := prompt.Until(s.prompter, fmt.Sprintf("Enter maximum %s: ", noun),
		prompt.IntParser(fmt.Sprintf("Please enter a valid number for the maximum %s.", noun), func(n int) error {
			if lo > n {
				return fmt.Errorf("Minimum %s cannot be greater than maximum %s.", noun, noun)
			}
			return nil
		}))
	if err != nil {
		return nil, err
	}

	return filter.NewRange(kind, lo, hi)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// =============================================================================
// RESULTS + SAVE
// =============================================================================

func (s *Session) handleResult(ds *records.Dataset, res filter.Result) error {
	var header []string
	if ds != nil {
		header = ds.Header
	}
	s.presenter.Show(res, header)
	if res.Empty() {
		return nil
	}

	save, err := prompt.YesNo(s.prompter, "Do you want to save these results? Y/N: ")
	if err != nil || !save {
		return err
	}

	path, name, err := s.chooseTarget()
	if err != nil {
		return err
	}
	s.save(path, name, res.Records)
	return nil
}

// chooseTarget asks for an output name until it is new or the user agrees to
// overwrite it.
func (s *Session) chooseTarget() (path, name string, err error) {
	for {
		name, err = prompt.Text(s.prompter, "What should the name of the new file be? ", "File name cannot be empty.")
		if err != nil {
			return "", "", err
		}
		name = locator.Normalize(name, "", s.opts.Extension)
		path = locator.Resolve(s.opts.Dir, name)
		if !locator.Exists(path) {
			return path, name, nil
		}

		var overwrite bool
		overwrite, err = prompt.YesNo(s.prompter,
			fmt.Sprintf("The file '%s' already exists. Do you want to overwrite it? Y/N: ", name))
		if err != nil {
			return "", "", err
		}
		if overwrite {
			return path, name, nil
		}
	}
}

func (s *Session) save(path, name string, recs []records.Record) {
	log := logging.For(s.logger, logging.CategoryPersist)
	if err := records.Save(path, recs); err != nil {
		log.Error("save failed", zap.String("path", path), zap.Error(err))
		if errors.Is(err, records.ErrNoRecords) {
			s.prompter.Say("No data to save.")
			return
		}
		s.prompter.Warn(fmt.Sprintf("An error occurred while saving to %s: %v", name, err))
		return
	}
	log.Info("results saved", zap.String("path", path), zap.Int("rows", len(recs)))
	s.prompter.Done(fmt.Sprintf("Data saved to %s", name))
}
