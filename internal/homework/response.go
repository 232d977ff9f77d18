package homework

import (
	"encoding/json"
	"fmt"
	"math"
)

// CheckResponse validates a decoded API payload and returns its homeworks.
// An empty list is a valid answer meaning nothing changed.
func CheckResponse(payload any) ([]Homework, error) {
	resp, err := asObject(payload)
	if err != nil {
		return nil, err
	}

	raw, ok := resp[KeyHomeworks]
	if !ok {
		return nil, &KeyError{Key: KeyHomeworks}
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T, want array", ErrUnexpectedShape, KeyHomeworks, raw)
	}

	homeworks := make([]Homework, 0, len(list))
	for i, item := range list {
		hw, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %T, want object", ErrUnexpectedShape, KeyHomeworks, i, item)
		}
		homeworks = append(homeworks, Homework(hw))
	}
	return homeworks, nil
}

// CurrentDate extracts the server timestamp that becomes the next cursor.
func CurrentDate(payload any) (int64, error) {
	resp, err := asObject(payload)
	if err != nil {
		return 0, err
	}

	raw, ok := resp[KeyCurrentDate]
	if !ok {
		return 0, &KeyError{Key: KeyCurrentDate}
	}

	switch v := raw.(type) {
	case json.Number:
		ts, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrUnexpectedShape, KeyCurrentDate, v)
		}
		return ts, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %s %v is not an integer", ErrUnexpectedShape, KeyCurrentDate, v)
		}
		return int64(v), nil
	default:
		return 0, fmt.Errorf("%w: %s is %T, want integer", ErrUnexpectedShape, KeyCurrentDate, raw)
	}
}

func asObject(payload any) (map[string]any, error) {
	resp, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: response is %T, want object", ErrUnexpectedShape, payload)
	}
	return resp, nil
}
