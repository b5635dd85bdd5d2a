package errorgen

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/iancoleman/strcase"
)

type (
	ErrorGen struct {
		ErrorMaps     []ErrorMap
		ErrorKeys     []ErrorKey
		ErrorMessages []ErrorMessage
		ErrorCodes    []ErrorCode
	}

	ErrorMap struct {
		Key     string
		Code    string
		Message string
	}

	ErrorKey struct {
		Key         string
		Description string
	}

	ErrorMessage struct {
		Key         string
		Description string
	}

	ErrorCode struct {
		Key         string
		Description string
	}
)

// Parse reads key,code,message rows (first row is a header). Keys sharing a
// code must share the message too, the code identifies the message.
func Parse(r io.Reader) (ErrorGen, error) {
	var data ErrorGen

	lines, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return data, fmt.Errorf("unable to read csv: %w", err)
	}

	messageByCode := make(map[string]string)
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) < 3 {
			return data, fmt.Errorf("line %d: expected key,code,message", i+1)
		}
		key := strings.TrimSpace(lines[i][0])
		code := strings.TrimSpace(lines[i][1])
		message := strings.TrimSpace(lines[i][2])

		errKey := "ErrKey" + strcase.ToCamel(key)
		data.ErrorKeys = append(data.ErrorKeys, ErrorKey{
			Key:         errKey,
			Description: key,
		})

		codeCamel := strcase.ToCamel(strings.ToLower(code))
		errCodeKey := "errCode" + codeCamel
		errMessageKey := "errMessage" + codeCamel

		if prev, ok := messageByCode[code]; ok {
			if prev != message {
				return data, fmt.Errorf("line %d: code %s already used with message %q", i+1, code, prev)
			}
		} else {
			messageByCode[code] = message
			data.ErrorCodes = append(data.ErrorCodes, ErrorCode{
				Key:         errCodeKey,
				Description: code,
			})
			data.ErrorMessages = append(data.ErrorMessages, ErrorMessage{
				Key:         errMessageKey,
				Description: message,
			})
		}

		data.ErrorMaps = append(data.ErrorMaps, ErrorMap{
			Key:     errKey,
			Code:    errCodeKey,
			Message: errMessageKey,
		})
	}

	return data, nil
}

// Render executes the template and gofmts the result.
func Render(tmplText string, data ErrorGen) ([]byte, error) {
	tmpl, err := template.New("error_map").Funcs(sprig.TxtFuncMap()).Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("unable to parse template: %w", err)
	}

	var processed bytes.Buffer
	if err := tmpl.Execute(&processed, data); err != nil {
		return nil, fmt.Errorf("unable to parse data into template: %w", err)
	}

	formatted, err := format.Source(processed.Bytes())
	if err != nil {
		return nil, fmt.Errorf("could not format processed template: %w", err)
	}

	return formatted, nil
}

func GenerateErrorMapFromCSV(templateFile, csvFile, outputFile string) error {
	f, err := os.Open(csvFile)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := Parse(f)
	if err != nil {
		return err
	}

	tmplText, err := os.ReadFile(templateFile)
	if err != nil {
		return err
	}

	out, err := Render(string(tmplText), data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputFile), 0o755); err != nil {
		return err
	}

	return os.WriteFile(outputFile, out, 0o644)
}
