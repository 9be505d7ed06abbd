package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"

	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/messages"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Colorizers for untrusted text, which must not be used as a format string.
var (
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := jsonAPI.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf(messages.OutputEncodeFmt, err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// writeJSONLine prints v as compact JSON on one line.
func writeJSONLine(w io.Writer, v any) error {
	data, err := jsonAPI.Marshal(v)
	if err != nil {
		return fmt.Errorf(messages.OutputEncodeFmt, err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// manifestKind names the failure kind of err for machine-readable output.
func manifestKind(err error) string {
	return manifest.KindOf(err).String()
}
