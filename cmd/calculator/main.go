// Command calculator is a desktop hand calculator.
package main

import (
	"flag"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	mahjong "mahjong-go"
	"mahjong-go/internal/calculator"
	"mahjong-go/internal/config"
)

func main() {
	configPath := flag.String("config", "", "YAML config file for rule variants")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	scorer := mahjong.NewScorer(mahjong.WithRules(cfg.Rules.ToRules()))

	a := app.New()
	w := a.NewWindow("Riichi Hand Calculator")

	hand := widget.NewEntry()
	hand.SetPlaceHolder("123m456p789s1122z")
	calls := widget.NewEntry()
	calls.SetPlaceHolder("pon:5z chi:234s@kamicha")
	win := widget.NewEntry()
	win.SetPlaceHolder("2z")
	tsumo := widget.NewCheck("Tsumo", nil)
	round := widget.NewSelect(calculator.Winds, nil)
	round.SetSelected("East")
	seat := widget.NewSelect(calculator.Winds, nil)
	seat.SetSelected("East")
	dora := widget.NewEntry()
	ura := widget.NewEntry()
	aka := widget.NewEntry()
	aka.SetPlaceHolder("0")
	honba := widget.NewEntry()
	honba.SetPlaceHolder("0")
	sticks := widget.NewEntry()
	sticks.SetPlaceHolder("0")

	flags := widget.NewCheckGroup(calculator.Flags, nil)
	flags.Horizontal = true

	result := widget.NewLabel("")
	result.TextStyle = fyne.TextStyle{Monospace: true}
	result.Wrapping = fyne.TextWrapWord

	readForm := func() calculator.Form {
		selected := make(map[string]bool, len(flags.Selected))
		for _, s := range flags.Selected {
			selected[s] = true
		}
		return calculator.Form{
			Hand:    hand.Text,
			Calls:   calls.Text,
			Win:     win.Text,
			Tsumo:   tsumo.Checked,
			Round:   round.Selected,
			Seat:    seat.Selected,
			Flags:   selected,
			Dora:    dora.Text,
			Ura:     ura.Text,
			Honba:   honba.Text,
			Sticks:  sticks.Text,
			AkaDora: aka.Text,
		}
	}

	form := widget.NewForm(
		widget.NewFormItem("Hand", hand),
		widget.NewFormItem("Calls", calls),
		widget.NewFormItem("Winning tile", win),
		widget.NewFormItem("", tsumo),
		widget.NewFormItem("Round wind", round),
		widget.NewFormItem("Seat wind", seat),
		widget.NewFormItem("Dora indicators", dora),
		widget.NewFormItem("Ura dora indicators", ura),
		widget.NewFormItem("Red fives", aka),
		widget.NewFormItem("Honba", honba),
		widget.NewFormItem("Riichi sticks", sticks),
	)
	form.SubmitText = "Score"
	form.OnSubmit = func() {
		result.SetText(calculator.Evaluate(scorer, readForm()))
	}

	waits := widget.NewButton("Waits", func() {
		result.SetText(calculator.WaitsText(readForm()))
	})
	reset := widget.NewButton("Clear", func() {
		for _, e := range []*widget.Entry{hand, calls, win, dora, ura, aka, honba, sticks} {
			e.SetText("")
		}
		tsumo.SetChecked(false)
		flags.SetSelected(nil)
		result.SetText("")
	})

	w.SetContent(container.NewVBox(
		form,
		flags,
		container.NewHBox(waits, reset),
		widget.NewSeparator(),
		container.NewVScroll(result),
	))
	w.Resize(fyne.NewSize(640, 720))
	w.ShowAndRun()
}
