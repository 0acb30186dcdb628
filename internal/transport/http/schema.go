package http

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const crimeSubmissionSchema = `{
  "type": "object",
  "required": ["sessionId", "answerHistory"],
  "properties": {
    "sessionId": {"type": "string", "minLength": 1},
    "answerHistory": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["questionId", "userAnswer"],
        "properties": {
          "questionId": {"type": "integer"},
          "userAnswer": {"type": "string"},
          "wasCorrect": {"type": "boolean"}
        }
      }
    },
    "correctCount": {"type": "integer", "minimum": 0},
    "totalQuestions": {"type": "integer", "minimum": 0},
    "perceptionGapPercent": {"type": "integer", "minimum": 0, "maximum": 100}
  }
}`

const statusSubmissionSchema = `{
  "type": "object",
  "required": ["sessionId", "answerHistory"],
  "properties": {
    "sessionId": {"type": "string", "minLength": 1},
    "score": {"type": "number", "minimum": 0},
    "totalQuestions": {"type": "integer", "minimum": 0},
    "answerHistory": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "integer"},
          "userQ1": {"type": "string"},
          "userQ2": {"type": "string"},
          "deportationOpinion": {"type": "string"}
        }
      }
    },
    "scaleImpact": {
      "type": "object",
      "properties": {
        "low": {"type": "integer", "minimum": 0},
        "high": {"type": "integer", "minimum": 0}
      }
    }
  }
}`

// bodySchema validates raw request bodies before they are decoded.
type bodySchema struct {
	schema *gojsonschema.Schema
}

func mustSchema(src string) bodySchema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(err)
	}
	return bodySchema{schema: s}
}

// validate returns the list of violations, or nil when body conforms.
func (b bodySchema) validate(body []byte) ([]string, error) {
	res, err := b.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, err
	}
	if res.Valid() {
		return nil, nil
	}
	out := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		out = append(out, strings.TrimPrefix(e.String(), "(root): "))
	}
	return out, nil
}
