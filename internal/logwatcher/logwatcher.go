package logwatcher

import (
	"fmt"
	"io"
	"os"

	"github.com/hpcloud/tail"
)

// Print writes the current contents of the log file to w.
func Print(logPath string, w io.Writer) error {
	f, err := os.Open(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no log file yet at %s", logPath)
		}
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// Follow tails the log file to w until the process is interrupted or the
// tail fails. New lines are picked up as boot-time connect attempts append
// to the file.
var Follow = func(logPath string, w io.Writer) error {
	t, err := tail.TailFile(logPath, tail.Config{
		Follow: true,
		ReOpen: true,
		Logger: tail.DiscardingLogger,
	})
	if err != nil {
		return fmt.Errorf("error tailing log file: %w", err)
	}
	defer t.Stop()

	for line := range t.Lines {
		if line.Err != nil {
			return fmt.Errorf("error reading log file: %w", line.Err)
		}
		fmt.Fprintln(w, line.Text)
	}
	return nil
}
