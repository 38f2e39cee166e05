package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/edconf/internal/config/loader"
)

type outputFormat int

const (
	outputText outputFormat = iota
	outputYAML
	outputJSON
	outputTOML
)

var errUnknownOutput = errors.New("unknown output format")

func (f outputFormat) String() string {
	switch f {
	case outputYAML:
		return "yaml"
	case outputJSON:
		return "json"
	case outputTOML:
		return "toml"
	default:
		return "text"
	}
}

func parseOutput(s string) (outputFormat, error) {
	switch s {
	case "", "text":
		return outputText, nil
	case "yaml", "yml":
		return outputYAML, nil
	case "json":
		return outputJSON, nil
	case "toml":
		return outputTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownOutput, s)
	}
}

// render writes data in the structured formats and calls text otherwise.
// A *loader.Document is written with the matching codec so section and
// option order survive. TOML needs a table at the top level, so other
// data must be a map or struct.
func render(w io.Writer, format outputFormat, data any, text func(io.Writer) error) error {
	if format == outputText {
		return text(w)
	}

	if doc, ok := data.(*loader.Document); ok {
		if format == outputJSON {
			data = doc.Map()
		} else {
			codec, err := loader.CodecByName(format.String())
			if err != nil {
				return err
			}
			return encodeDoc(w, codec, doc)
		}
	}

	var (
		out []byte
		err error
	)
	switch format {
	case outputYAML:
		out, err = yaml.Marshal(data)
	case outputTOML:
		out, err = toml.Marshal(data)
	default:
		out, err = json.MarshalIndent(data, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func encodeDoc(w io.Writer, codec loader.Codec, doc *loader.Document) error {
	out, err := codec.Encode(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
