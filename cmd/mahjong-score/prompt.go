package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"mahjong-go/internal/wire"
)

// prompt reads hands from r until EOF or an empty hand line.
func (a *app) prompt(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		req, err := a.askRequest(reader)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if req == nil {
			return nil
		}
		if err := a.score("", req); err != nil {
			fmt.Fprintln(a.out, "error:", err)
		}
		fmt.Fprintln(a.out)
	}
}

func (a *app) askRequest(reader *bufio.Reader) (*wire.Request, error) {
	hand, err := a.askLine(reader, "Hand (empty to quit): ")
	if err != nil || hand == "" {
		return nil, err
	}
	req := &wire.Request{Hand: hand}

	callsLine, err := a.askLine(reader, "Calls, space separated type:tiles (optional): ")
	if err != nil {
		return nil, err
	}
	var calls callList
	for _, f := range strings.Fields(callsLine) {
		if err := calls.Set(f); err != nil {
			return nil, err
		}
	}
	req.Calls = calls

	if req.WinningTile, err = a.askLine(reader, "Winning tile: "); err != nil {
		return nil, err
	}
	if req.Tsumo, err = a.askYesNo(reader, "Tsumo? (y/n): "); err != nil {
		return nil, err
	}
	if req.RoundWind, err = a.askLine(reader, "Round wind: "); err != nil {
		return nil, err
	}
	if req.SeatWind, err = a.askLine(reader, "Seat wind: "); err != nil {
		return nil, err
	}
	if req.Riichi, err = a.askYesNo(reader, "Riichi? (y/n): "); err != nil {
		return nil, err
	}
	if req.DoraIndicators, err = a.askLine(reader, "Dora indicators (optional): "); err != nil {
		return nil, err
	}
	if req.Riichi {
		if req.UraDoraIndicators, err = a.askLine(reader, "Ura dora indicators (optional): "); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// askLine prints prompt and returns the trimmed reply. A final line without a
// newline is still returned.
func (a *app) askLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	input, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (a *app) askYesNo(reader *bufio.Reader, prompt string) (bool, error) {
	input, err := a.askLine(reader, prompt)
	if err != nil {
		return false, err
	}
	return strings.ToLower(input) == "y", nil
}
