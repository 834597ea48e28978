package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/remindme/internal/assistant"
	"github.com/Veraticus/remindme/internal/prompt"
)

// historyLimit is how many turns of conversation are kept for context.
const historyLimit = 10

// Responder answers one utterance.
type Responder interface {
	Respond(ctx context.Context, req assistant.Request) assistant.IntelligentResponse
}

// Chat is an interactive conversation with the assistant.
type Chat struct {
	reader    *LineReader
	writer    io.Writer
	responder Responder
	request   func(input string) assistant.Request
	history   []prompt.Turn
}

// NewChat creates a chat reading from r and writing to w. request builds the
// state each utterance is answered against.
func NewChat(r io.Reader, w io.Writer, responder Responder, request func(input string) assistant.Request) *Chat {
	return &Chat{
		reader:    NewLineReader(r),
		writer:    w,
		responder: responder,
		request:   request,
	}
}

// Run loops until EOF, "exit"/"quit", or ctx is canceled.
func (c *Chat) Run(ctx context.Context) error {
	if _, err := fmt.Fprintln(c.writer, SubtleStyle.Render("Ask about your tasks and goals. Type exit to leave.")); err != nil {
		return err
	}

	for {
		if _, err := fmt.Fprint(c.writer, FormatPrompt("you")); err != nil {
			return err
		}

		input, err := c.reader.ReadLine(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, ErrInputCancelled) {
			_, _ = fmt.Fprintln(c.writer)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		switch strings.ToLower(input) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		req := c.request(input)
		req.History = append([]prompt.Turn(nil), c.history...)
		resp := c.responder.Respond(ctx, req)
		c.remember(prompt.Turn{Text: input, FromUser: true}, prompt.Turn{Text: resp.Text})

		if _, err := fmt.Fprintln(c.writer, RenderResponse(resp)); err != nil {
			return err
		}
	}
}

// History returns the turns kept so far, oldest first.
func (c *Chat) History() []prompt.Turn {
	return append([]prompt.Turn(nil), c.history...)
}

func (c *Chat) remember(turns ...prompt.Turn) {
	c.history = append(c.history, turns...)
	if extra := len(c.history) - historyLimit; extra > 0 {
		c.history = c.history[extra:]
	}
}
