package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"checkers/internal/checkers"
)

type command int

const (
	cmdMove command = iota
	cmdNew
	cmdHelp
	cmdQuit
)

var errBadInput = errors.New("enter four numbers: from_row from_col to_row to_col")

// parseInput 接受 "5 2 4 3"，逗号分隔也行；另有 new / help / quit
func parseInput(s string) (command, checkers.Position, checkers.Position, error) {
	var from, to checkers.Position

	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "new", "n":
		return cmdNew, from, to, nil
	case "help", "h", "?":
		return cmdHelp, from, to, nil
	case "quit", "q", "exit":
		return cmdQuit, from, to, nil
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 4 {
		return cmdMove, from, to, errBadInput
	}
	var n [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return cmdMove, from, to, errBadInput
		}
		if v < 0 || v >= checkers.Size {
			return cmdMove, from, to, fmt.Errorf("coordinate %d out of range 0-%d", v, checkers.Size-1)
		}
		n[i] = v
	}
	from = checkers.Position{Row: n[0], Col: n[1]}
	to = checkers.Position{Row: n[2], Col: n[3]}
	return cmdMove, from, to, nil
}
