package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"droplet/internal/models"
	"droplet/internal/utils"
)

type MedCmd struct {
	Add    MedAddCmd    `cmd:"" help:"Add a medication."`
	List   MedListCmd   `cmd:"" help:"List medications." default:"1"`
	Take   MedTakeCmd   `cmd:"" help:"Record a dose."`
	Undo   MedUndoCmd   `cmd:"" help:"Remove the last dose recorded today."`
	Edit   MedEditCmd   `cmd:"" help:"Edit a medication."`
	Delete MedDeleteCmd `cmd:"" help:"Delete a medication."`
}

type MedAddCmd struct {
	Name      string `help:"Medication name."`
	Dosage    string `help:"Dosage description, e.g. '500mg'."`
	Frequency string `help:"Doses per day: once, twice, three_times, four_times, custom." default:"once"`
	Times     string `help:"Comma-separated dose times (HH:MM)." default:"09:00"`
	Notes     string `help:"Optional notes." default:""`
}

func (c *MedAddCmd) Run(ctx *Context) error {
	// Without --name, collect everything through a form.
	if c.Name == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	freq := models.Frequency(c.Frequency)
	if !freq.Valid() {
		return fmt.Errorf("invalid frequency %q", c.Frequency)
	}

	var times []string
	for _, t := range strings.Split(c.Times, ",") {
		t = strings.TrimSpace(t)
		if !utils.ValidateClockFormat(t) {
			return fmt.Errorf("invalid dose time %q (expected HH:MM)", t)
		}
		times = append(times, t)
	}
	if n := freq.DosesPerDay(); n > 0 && len(times) != n {
		return fmt.Errorf("frequency %q needs %d dose time(s), got %d", c.Frequency, n, len(times))
	}

	ctx.Tracker.AddMedication(models.Medication{
		Name:      c.Name,
		Dosage:    c.Dosage,
		Frequency: freq,
		Times:     times,
		Active:    true,
		Notes:     c.Notes,
	})

	ctx.FlushAndPrintToast()
	return nil
}

func (c *MedAddCmd) promptForm() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&c.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Dosage").
				Description("e.g. 500mg").
				Value(&c.Dosage),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Once daily", string(models.FrequencyOnce)),
					huh.NewOption("Twice daily", string(models.FrequencyTwice)),
					huh.NewOption("Three times daily", string(models.FrequencyThreeTimes)),
					huh.NewOption("Four times daily", string(models.FrequencyFourTimes)),
					huh.NewOption("Custom", string(models.FrequencyCustom)),
				).
				Value(&c.Frequency),
			huh.NewInput().
				Title("Dose times").
				Description("Comma-separated HH:MM, one per dose").
				Value(&c.Times).
				Validate(func(s string) error {
					for _, t := range strings.Split(s, ",") {
						if !utils.ValidateClockFormat(strings.TrimSpace(t)) {
							return fmt.Errorf("invalid time %q", strings.TrimSpace(t))
						}
					}
					return nil
				}),
			huh.NewInput().
				Title("Notes").
				Value(&c.Notes),
		),
	).Run()
}

type MedListCmd struct{}

func (c *MedListCmd) Run(ctx *Context) error {
	rec := ctx.Tracker.Record()
	if len(rec.Medications) == 0 {
		fmt.Println("No medications found.")
		return nil
	}

	for _, med := range rec.Medications {
		status := ctx.Tracker.TodayStatus(med.ID)
		marker := " "
		if status.Completed {
			marker = "✓"
		}
		fmt.Printf("[%s] %s (%s, %s) %d/%d doses today\n",
			marker, med.Name, med.Dosage, med.Frequency, len(status.TimesTaken), med.RequiredDoses())
	}
	return nil
}

type MedTakeCmd struct {
	Med string `arg:"" help:"Medication name or id."`
}

func (c *MedTakeCmd) Run(ctx *Context) error {
	med, ok := ctx.FindMedication(c.Med)
	if !ok {
		return fmt.Errorf("medication %q not found", c.Med)
	}

	ctx.Tracker.TakeMedication(med.ID)
	ctx.FlushAndPrintToast()
	return nil
}

type MedUndoCmd struct {
	Med string `arg:"" help:"Medication name or id."`
}

func (c *MedUndoCmd) Run(ctx *Context) error {
	med, ok := ctx.FindMedication(c.Med)
	if !ok {
		return fmt.Errorf("medication %q not found", c.Med)
	}

	ctx.Tracker.RemoveMedicationDose(med.ID)
	ctx.FlushAndPrintToast()
	return nil
}

type MedEditCmd struct {
	Med    string `arg:"" help:"Medication name or id."`
	Name   string `help:"New name." default:""`
	Dosage string `help:"New dosage." default:""`
	Times  string `help:"New comma-separated dose times (HH:MM)." default:""`
	Notes  string `help:"New notes." default:""`
	Active *bool  `help:"Set active state."`
}

func (c *MedEditCmd) Run(ctx *Context) error {
	med, ok := ctx.FindMedication(c.Med)
	if !ok {
		return fmt.Errorf("medication %q not found", c.Med)
	}

	if c.Name != "" {
		med.Name = c.Name
	}
	if c.Dosage != "" {
		med.Dosage = c.Dosage
	}
	if c.Times != "" {
		var times []string
		for _, t := range strings.Split(c.Times, ",") {
			t = strings.TrimSpace(t)
			if !utils.ValidateClockFormat(t) {
				return fmt.Errorf("invalid dose time %q (expected HH:MM)", t)
			}
			times = append(times, t)
		}
		med.Times = times
		med.Frequency = models.FrequencyCustom
	}
	if c.Notes != "" {
		med.Notes = c.Notes
	}
	if c.Active != nil {
		med.Active = *c.Active
	}

	ctx.Tracker.UpdateMedication(med)
	ctx.Tracker.Flush()
	fmt.Printf("Updated %s\n", med.Name)
	return nil
}

type MedDeleteCmd struct {
	Med string `arg:"" help:"Medication name or id."`
}

func (c *MedDeleteCmd) Run(ctx *Context) error {
	med, ok := ctx.FindMedication(c.Med)
	if !ok {
		return fmt.Errorf("medication %q not found", c.Med)
	}

	ctx.Tracker.DeleteMedication(med.ID)
	ctx.FlushAndPrintToast()
	return nil
}
