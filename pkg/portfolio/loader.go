package portfolio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikogura/portfolio-builder/pkg/resume"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Load reads a portfolio record from a JSON or YAML file. The selector is an
// optional gjson path picking the record out of a larger document.
func Load(path, selector string) (record resume.Record, err error) {
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read portfolio file: %s", path)
		return record, err
	}

	if isYAML(path) {
		fileData, err = yamlToJSON(fileData)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse portfolio YAML: %s", path)
			return record, err
		}
	}

	record, err = Decode(fileData, selector)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode portfolio file: %s", path)
		return record, err
	}

	return record, err
}

// Decode parses a JSON document into a record, applying the selector first.
func Decode(data []byte, selector string) (record resume.Record, err error) {
	var selected []byte
	selected, err = Select(data, selector)
	if err != nil {
		return record, err
	}

	err = json.Unmarshal(selected, &record)
	if err != nil {
		err = errors.Wrap(err, "portfolio record must be a JSON object")
		return record, err
	}

	if record == nil {
		err = errors.New("portfolio record is empty")
		return record, err
	}

	return record, err
}

// Select returns the sub-document at a gjson path. An empty selector returns
// the input unchanged.
func Select(data []byte, selector string) (selected []byte, err error) {
	if !gjson.ValidBytes(data) {
		err = errors.New("invalid JSON document")
		return selected, err
	}

	if selector == "" {
		selected = data
		return selected, err
	}

	result := gjson.GetBytes(data, selector)
	if !result.Exists() {
		err = errors.Errorf("selector %q matched nothing", selector)
		return selected, err
	}

	selected = []byte(result.Raw)
	return selected, err
}

func isYAML(path string) (ok bool) {
	ext := strings.ToLower(filepath.Ext(path))
	ok = ext == ".yaml" || ext == ".yml"
	return ok
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share the
// selector and decoding path.
func yamlToJSON(data []byte) (out []byte, err error) {
	var doc interface{}
	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return out, err
	}

	out, err = json.Marshal(doc)
	if err != nil {
		err = errors.Wrap(err, "failed to re-encode YAML as JSON")
		return out, err
	}

	return out, err
}
