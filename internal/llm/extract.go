package llm

import (
	"encoding/json"
	"strings"
)

// ExtractText pulls the generated text out of a response envelope. The
// envelope is treated as untyped: a top-level "text" string wins, otherwise
// every candidates[0].content.parts[].text is concatenated in order.
//
// A blank result is an *EmptyResponseError; an envelope with text at
// neither location is a *MalformedResponseError carrying the payload.
func ExtractText(payload []byte) (string, error) {
	var env any
	if err := json.Unmarshal(payload, &env); err != nil {
		return "", &MalformedResponseError{Reason: "invalid json: " + err.Error(), Payload: string(payload)}
	}
	root, ok := env.(map[string]any)
	if !ok {
		return "", &MalformedResponseError{Reason: "envelope is not an object", Payload: string(payload)}
	}

	if text, ok := root["text"].(string); ok {
		return nonEmpty(text)
	}

	texts, ok := candidateTexts(root)
	if !ok {
		return "", &MalformedResponseError{Reason: "no text or candidates[0].content.parts[].text", Payload: string(payload)}
	}
	return nonEmpty(strings.Join(texts, ""))
}

// candidateTexts walks candidates[0].content.parts and collects every text
// field. ok is false when the path is missing or holds no text at all.
func candidateTexts(root map[string]any) ([]string, bool) {
	candidates, _ := root["candidates"].([]any)
	if len(candidates) == 0 {
		return nil, false
	}
	first, _ := candidates[0].(map[string]any)
	content, _ := first["content"].(map[string]any)
	parts, _ := content["parts"].([]any)

	var texts []string
	for _, p := range parts {
		m, _ := p.(map[string]any)
		if s, ok := m["text"].(string); ok {
			texts = append(texts, s)
		}
	}
	return texts, len(texts) > 0
}

func nonEmpty(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &EmptyResponseError{}
	}
	return text, nil
}

// StripCodeFences removes a surrounding Markdown code fence (```latex ...
// ```), leaving the inner text trimmed. Text without a fence is returned
// trimmed.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.HasPrefix(strings.TrimSpace(lines[n-1]), "```") {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
