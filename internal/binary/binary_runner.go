package binary

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	. "github.com/eloworld/strategies/internal/helpers"
)

// BinaryRunner owns a child process spoken to line-by-line over stdin and
// stdout. The evaluation oracle runs behind one of these.
type BinaryRunner struct {
	cmdPath string
	cmdName string
	cmd     *exec.Cmd

	stdin ReadableWriter

	stdout StdOutBuffer

	record []string

	Logger Logger
}

type BinaryRunnerOption func(*BinaryRunner)

func (b *BinaryRunner) CmdPath() string {
	return b.cmdPath
}

func (b *BinaryRunner) CmdName() string {
	return b.cmdName
}

func WithLogger(logger Logger) BinaryRunnerOption {
	return func(u *BinaryRunner) {
		u.Logger = logger
	}
}

func (u *BinaryRunner) flush(indent string) string {
	return Indent(strings.Join(u.record, "\n"), indent)
}

func (u *BinaryRunner) Flush() string {
	return "> " + u.flush("> ")
}

func wrapError(u *BinaryRunner, err error) Error {
	if !IsNil(err) {
		return Wrap(fmt.Errorf("%w\n.  %v\n", err, u.flush(".  ")))
	}
	return NilError
}

func SetupBinaryRunner(cmdPath string, cmdName string, args []string, options ...BinaryRunnerOption) (*BinaryRunner, Error) {
	u := &BinaryRunner{
		cmdPath: cmdPath,
		cmdName: cmdName,
	}

	for _, option := range options {
		option(u)
	}

	if u.Logger == nil {
		u.Logger = &SilentLogger
	}

	u.cmd = exec.Command(cmdPath, args...)

	var err error
	u.stdin.Writer, err = u.cmd.StdinPipe()
	u.stdin.ReadChan = make(chan string, 64)
	if !IsNil(err) {
		return u, wrapError(u, err)
	}

	var stdout io.Reader
	var stderr io.Reader
	stdout, err = u.cmd.StdoutPipe()
	if !IsNil(err) {
		return u, wrapError(u, err)
	}
	stderr, err = u.cmd.StderrPipe()
	if !IsNil(err) {
		return u, wrapError(u, err)
	}

	recordLock := sync.Mutex{}

	go func() {
		for line := range u.stdin.ReadChan {
			u.Logger.Println("stdin: ", strings.TrimSpace(line))
			u.record = AppendSafe(&recordLock, u.record, "in:  "+strings.TrimSpace(line))
		}
	}()

	go func() {
		stdoutScanner := bufio.NewScanner(bufio.NewReader(stdout))
		for stdoutScanner.Scan() {
			line := stdoutScanner.Text()
			u.Logger.Println("stdout: ", Ellipses(line, 140))
			u.record = AppendSafe(&recordLock, u.record, "out: "+line)
			u.stdout.Update(line)
		}
	}()

	go func() {
		stderrScanner := bufio.NewScanner(bufio.NewReader(stderr))
		for stderrScanner.Scan() {
			line := stderrScanner.Text()
			u.record = AppendSafe(&recordLock, u.record, "err: "+line)
		}
	}()

	err = u.cmd.Start()
	if !IsNil(err) {
		return u, wrapError(u, err)
	}

	return u, NilError
}

func (u *BinaryRunner) RunAsync(input string) Error {
	if u.cmd == nil {
		return wrapError(u, Errorf("cmd not setup: %v", u.cmdPath))
	}

	if u.cmd.ProcessState != nil && u.cmd.ProcessState.Exited() {
		return wrapError(u, Errorf("cmd exited: %v", u.cmdPath))
	}

	_, err := u.stdin.Write([]byte(input + "\n"))
	if !IsNil(err) {
		return wrapError(u, err)
	}

	return NilError
}

func (u *BinaryRunner) RunSync(input string, callback func(string) (LoopResult, Error), timeout Optional[time.Duration]) Error {
	err := u.RunAsync(input)
	if !IsNil(err) {
		return err
	}

	done := false

	timeoutChan := make(chan bool)
	go func() {
		if timeout.HasValue() {
			time.Sleep(timeout.Value())
		} else {
			time.Sleep(time.Second * 10)
		}
		AsyncSend(&timeoutChan, true)
	}()

	handleLine := func(line string) Error {
		result, callbackErr := callback(line)
		if result == LoopBreak {
			done = true
		}
		return callbackErr
	}

	timedOut := false
	for !done {
		select {
		case <-timeoutChan:
			err = u.stdout.Drain(handleLine)
			timedOut = true
			done = true
		case <-u.stdout.Wait():
			err = u.stdout.Drain(handleLine)
		}

		if !IsNil(err) {
			return err
		}
	}

	if timedOut {
		return wrapError(u, Errorf("timeout running '%v' against %v", input, u.cmdPath))
	}

	return NilError
}

func (u *BinaryRunner) Run(input string, waitFor Optional[string]) ([]string, Error) {
	result := []string{}

	err := u.RunSync(input, func(line string) (LoopResult, Error) {
		result = append(result, line)

		if waitFor.HasValue() && strings.Contains(line, waitFor.Value()) {
			return LoopBreak, NilError
		}
		return LoopContinue, NilError
	}, Some(5*time.Second))

	if !IsNil(err) {
		return result, err
	}

	return result, NilError
}

func (u *BinaryRunner) Close() {
	if u.cmd != nil {
		_ = u.cmd.Process.Kill()
		u.cmd = nil
	}
}
