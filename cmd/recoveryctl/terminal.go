package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Goden-Gun/payment-recovery/pkg/classifier"
	"github.com/Goden-Gun/payment-recovery/pkg/recovery"
)

// terminalExecutor presents alerts on a terminal and reads the answer one
// line at a time. Scripted answers, when set, are consumed before the input.
// Input is only read while an alert waits for an answer.
type terminalExecutor struct {
	out     io.Writer
	in      *bufio.Reader
	pending chan lineResult
	scripts []string
}

type lineResult struct {
	line string
	err  error
}

func newTerminalExecutor(in io.Reader, out io.Writer, scripted []string) *terminalExecutor {
	return &terminalExecutor{out: out, in: bufio.NewReader(in), scripts: scripted}
}

func (t *terminalExecutor) PresentAlert(ctx context.Context, alert recovery.Alert) recovery.Choice {
	fmt.Fprintf(t.out, "\n[%s] %s\n%s\n", alert.Code, alert.Title, alert.Message)
	if alert.OfferRetry {
		fmt.Fprint(t.out, "retry or dismiss? [r/d]: ")
	} else {
		fmt.Fprint(t.out, "press enter to dismiss: ")
	}

	answer, ok := t.next(ctx)
	if !ok {
		fmt.Fprintln(t.out)
		return recovery.Dismissed
	}
	if alert.OfferRetry && isRetry(answer) {
		return recovery.Retried
	}
	return recovery.Dismissed
}

func (t *terminalExecutor) ClosePayment(_ context.Context, failure classifier.RawFailure) {
	fmt.Fprintf(t.out, "closing payment session (%v)\n", failure)
}

func (t *terminalExecutor) next(ctx context.Context) (string, bool) {
	if len(t.scripts) > 0 {
		answer := t.scripts[0]
		t.scripts = t.scripts[1:]
		fmt.Fprintln(t.out, answer)
		return answer, true
	}
	return t.readLine(ctx)
}

// readLine waits for one input line. A read left pending by a cancelled ctx
// is picked up by the next call instead of starting a second reader.
func (t *terminalExecutor) readLine(ctx context.Context) (string, bool) {
	if t.pending == nil {
		ch := make(chan lineResult, 1)
		t.pending = ch
		go func() {
			line, err := t.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
	}
	select {
	case r := <-t.pending:
		t.pending = nil
		if r.err != nil && r.line == "" {
			return "", false
		}
		return strings.TrimRight(r.line, "\r\n"), true
	case <-ctx.Done():
		return "", false
	}
}

func isRetry(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "r", "retry", "y", "yes":
		return true
	}
	return false
}
