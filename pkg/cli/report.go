package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/FakeErrorX/relnotify/pkg/domain/model"
)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
)

// reportConfigError prints the missing variable message and passes err through
func reportConfigError(w io.Writer, err error) error {
	var envErr *model.MissingEnvError
	if errors.As(err, &envErr) {
		_, _ = failureColor.Fprintln(w, "Error: "+envErr.Error())
	}
	return err
}

func reportDiscord(w io.Writer, announcement *model.Announcement) {
	if !announcement.Delivered {
		_, _ = failureColor.Fprintf(w, "Error sending message: %d\n", announcement.Result.StatusCode)
		_, _ = fmt.Fprintln(w, string(announcement.Result.Body))
		return
	}
	_, _ = successColor.Fprintln(w, "Successfully sent release notification to Discord")
}

func reportTelegram(w io.Writer, announcement *model.Announcement) {
	_, _ = fmt.Fprintln(w, "Response JSON:", responseText(announcement.Result.Body))
}

// responseText renders a JSON body on one line, or returns the body unchanged if it is not JSON
func responseText(body []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return string(body)
	}
	return buf.String()
}
