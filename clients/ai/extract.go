package ai

import (
	"fmt"
	"strings"
)

// ExtractJSON вырезает JSON-документ из ответа модели: снимает
// markdown-ограждения и возвращает внешний объект или массив.
// Модель нередко оборачивает JSON в пояснительный текст.
func ExtractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	// Снимаем ограждение ```json ... ```
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	start, opener, closer := objStart, byte('{'), byte('}')
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		start, opener, closer = arrStart, '[', ']'
	}
	if start < 0 {
		return "", fmt.Errorf("в ответе нет JSON-документа")
	}

	// Ищем парную закрывающую скобку внешнего документа,
	// не заглядывая внутрь строковых литералов
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == opener:
			depth++
		case ch == closer:
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("JSON-документ в ответе не закрыт")
}
