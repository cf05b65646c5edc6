package internal

import (
	"bufio"
	"event-calendar/errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

type Action string

const (
	CreateAction       Action = "create"
	RegisterAction     Action = "register"
	UnregisterAction   Action = "unregister"
	ParticipantsAction Action = "participants"
	EventsAction       Action = "events"
)

// Instruction is one line of a calendar script.
//
//	create <invitor> <title> <RFC3339 date | ±duration> [max]
//	register <person> <title>
//	unregister <person> <title>
//	participants <title>
//	events <person>
//
// Arguments containing spaces are double-quoted. Blank lines and lines starting with # are skipped.
type Instruction struct {
	Line            int
	Action          Action
	Person          string
	Title           string
	At              time.Time
	MaxParticipants int
}

// ParseScript reads every instruction of r. Relative dates ("+36h", "-1h") are resolved against now.
func ParseScript(r io.Reader, now time.Time) ([]Instruction, error) {
	var instructions []Instruction
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		args, err := splitArgs(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", errors.ErrInvalidScript, line, err)
		}
		instruction, err := parseInstruction(args, now)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", errors.ErrInvalidScript, line, err)
		}
		instruction.Line = line
		instructions = append(instructions, instruction)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return instructions, nil
}

func parseInstruction(args []string, now time.Time) (Instruction, error) {
	action := Action(strings.ToLower(args[0]))
	params := args[1:]
	switch action {
	case CreateAction:
		if len(params) < 3 || len(params) > 4 {
			return Instruction{}, fmt.Errorf("create expects <invitor> <title> <date> [max], got %d arguments", len(params))
		}
		at, err := parseDate(params[2], now)
		if err != nil {
			return Instruction{}, err
		}
		maxParticipants := 0
		if len(params) == 4 {
			if maxParticipants, err = strconv.Atoi(params[3]); err != nil {
				return Instruction{}, fmt.Errorf("invalid max %q: %v", params[3], err)
			}
		}
		return Instruction{Action: action, Person: params[0], Title: params[1], At: at, MaxParticipants: maxParticipants}, nil
	case RegisterAction, UnregisterAction:
		if len(params) != 2 {
			return Instruction{}, fmt.Errorf("%s expects <person> <title>, got %d arguments", action, len(params))
		}
		return Instruction{Action: action, Person: params[0], Title: params[1]}, nil
	case ParticipantsAction:
		if len(params) != 1 {
			return Instruction{}, fmt.Errorf("participants expects <title>, got %d arguments", len(params))
		}
		return Instruction{Action: action, Title: params[0]}, nil
	case EventsAction:
		if len(params) != 1 {
			return Instruction{}, fmt.Errorf("events expects <person>, got %d arguments", len(params))
		}
		return Instruction{Action: action, Person: params[0]}, nil
	default:
		return Instruction{}, fmt.Errorf("unknown action %q", args[0])
	}
}

func parseDate(str string, now time.Time) (time.Time, error) {
	if strings.HasPrefix(str, "+") || strings.HasPrefix(str, "-") {
		d, err := time.ParseDuration(str)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid relative date %q: %v", str, err)
		}
		return now.Add(d), nil
	}
	at, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %v", str, err)
	}
	return at, nil
}

// splitArgs splits on whitespace and keeps double-quoted arguments whole.
func splitArgs(line string) ([]string, error) {
	var args []string
	rest := strings.TrimSpace(line)
	for rest != "" {
		if rest[0] == '"' {
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return nil, fmt.Errorf("unterminated quote in %q", rest)
			}
			arg, _ := strconv.Unquote(quoted)
			args = append(args, arg)
			rest = strings.TrimSpace(rest[len(quoted):])
			continue
		}
		end := strings.IndexAny(rest, " \t")
		if end < 0 {
			args = append(args, rest)
			break
		}
		args = append(args, rest[:end])
		rest = strings.TrimSpace(rest[end:])
	}
	return args, nil
}
