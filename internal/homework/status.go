package homework

import "fmt"

var verdicts = map[Status]string{
	StatusApproved:  "Work reviewed: the reviewer liked everything. Hooray!",
	StatusReviewing: "Work taken for review by the reviewer.",
	StatusRejected:  "Work reviewed: the reviewer has comments.",
}

// Verdict returns the fixed sentence for a recognized status.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// ParseStatus turns one homework into the message sent to the chat.
func ParseStatus(hw Homework) (string, error) {
	name, err := stringField(hw, FieldName)
	if err != nil {
		return "", err
	}
	status, err := stringField(hw, FieldStatus)
	if err != nil {
		return "", err
	}

	verdict, ok := Verdict(Status(status))
	if !ok {
		return "", &StatusError{Status: status}
	}
	return fmt.Sprintf(`Changed review status of work "%s". %s`, name, verdict), nil
}

func stringField(hw Homework, field string) (string, error) {
	raw, ok := hw[field]
	if !ok {
		return "", &FieldError{Field: field}
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, want string", ErrUnexpectedShape, field, raw)
	}
	return s, nil
}
