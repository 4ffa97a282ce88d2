package ui

import (
	"errors"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/calvinmclean/dondonpa"
	"github.com/calvinmclean/dondonpa/controller"
)

type ConfigWindow struct {
	app      fyne.App
	OnSubmit func() error
}

func NewConfigWindow(app fyne.App) *ConfigWindow {
	return &ConfigWindow{
		app: app,
	}
}

func (cw *ConfigWindow) loadConfigFromPreferences(cfg *controller.Config) {
	prefs := cw.app.Preferences()
	if cfg.SerialPort == "" {
		cfg.SerialPort = prefs.StringWithFallback("serialPort", "")
	}
	if cfg.BaudRate == "" {
		cfg.BaudRate = prefs.StringWithFallback("baudRate", strconv.Itoa(dondonpa.BaudRate))
	}
}

func (cw *ConfigWindow) saveConfigToPreferences(cfg *controller.Config) {
	prefs := cw.app.Preferences()
	prefs.SetString("serialPort", cfg.SerialPort)
	prefs.SetString("baudRate", cfg.BaudRate)
}

func (cw *ConfigWindow) Show(cfg *controller.Config) {
	window := cw.app.NewWindow("Don Don Pa - Configuration")
	window.Resize(fyne.NewSize(400, 150))
	window.SetCloseIntercept(func() {
		// Treat window close as cancel
		window.Close()
		cw.app.Quit()
	})
	window.Show()

	cw.loadConfigFromPreferences(cfg)

	serialPorts, err := controller.GetSerialPorts()
	if err != nil && !errors.Is(err, controller.ErrNoUSBSerial) {
		showError(cw.app, window, fmt.Errorf("error getting serial ports: %w", err))
		return
	}

	serialPorts = append(serialPorts, controller.SerialPortNone)

	serialEntry := widget.NewSelect(serialPorts, nil)
	if cfg.SerialPort == "" {
		cfg.SerialPort = serialPorts[0]
	}
	serialEntry.Bind(binding.BindString(&cfg.SerialPort))

	baudRateEntry := widget.NewEntry()
	baudRateEntry.Bind(binding.BindString(&cfg.BaudRate))

	submitButton := widget.NewButton("Connect", func() {
		err := cw.OnSubmit()
		if err != nil {
			dialog.NewError(err, window).Show()
			return
		}
		cw.saveConfigToPreferences(cfg)
		window.Close()
	})
	submitButton.Disable()

	validateForm := func() {
		if validConfig(*cfg) {
			submitButton.Enable()
		} else {
			submitButton.Disable()
		}
	}

	serialEntry.OnChanged = func(_ string) { validateForm() }
	baudRateEntry.OnChanged = func(_ string) { validateForm() }

	validateForm()

	form := container.NewVBox(
		widget.NewCard("Configuration", "", container.NewVBox(
			container.NewGridWithColumns(2,
				widget.NewLabel("Serial Port:"),
				serialEntry,
			),
			container.NewGridWithColumns(2,
				widget.NewLabel("Baud Rate:"),
				baudRateEntry,
			),
		)),
		container.NewHBox(
			widget.NewButton("Cancel", func() {
				window.Close()
				cw.app.Quit()
			}),
			submitButton,
		),
	)

	window.SetContent(form)
}

func validConfig(cfg controller.Config) bool {
	if cfg.SerialPort == "" {
		return false
	}
	rate, err := strconv.Atoi(cfg.BaudRate)
	return err == nil && rate > 0
}

func showError(app fyne.App, window fyne.Window, err error) {
	d := dialog.NewError(err, window)
	d.SetOnClosed(func() {
		app.Quit()
	})
	d.Show()
}
