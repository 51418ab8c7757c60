package cli

import (
	"fmt"

	"droplet/internal/models"
	"droplet/internal/storage"
	"droplet/internal/toast"
	"droplet/internal/tracker"
)

// Context carries the shared collaborators into every command Run method.
type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
	Toasts  *toast.Slot
}

// FlushAndPrintToast persists any pending write and echoes the toast a
// mutation produced, if one is still visible. CLI invocations are one-shot,
// so the single toast slot doubles as the command's feedback line.
func (c *Context) FlushAndPrintToast() {
	c.Tracker.Flush()
	if t := c.Toasts.Current(); t != nil {
		fmt.Println(t.Message)
	}
}

// FindMedication resolves a medication by id or (case-sensitive) name.
func (c *Context) FindMedication(ref string) (models.Medication, bool) {
	rec := c.Tracker.Record()
	for _, med := range rec.Medications {
		if med.ID == ref || med.Name == ref {
			return med, true
		}
	}
	return models.Medication{}, false
}

// FormatIntake renders an intake amount against the goal, e.g. "1.25 / 2.0 L".
func FormatIntake(intake, goal float64) string {
	return fmt.Sprintf("%.2f / %.1f L", intake, goal)
}
