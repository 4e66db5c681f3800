package tracker

import (
	"fmt"
	"time"
)

const (
	messageAccessDenied = "Private bot – access denied."
	messageGreeting     = "Hi! Tap a button when something happens."
	messageNoDataYet    = "No data yet."
	messageExportFailed = "❌ Could not read the log. Try again later."

	messageSessionExpired = "❌ Session expired. Please start over."
	messageInvalidOffset  = "❌ Invalid offset. Please start over."
	messageUnknownOption  = "❌ Unknown option. Please start over."

	messageCustomParseFailed = "❌ Could not parse time. Use:\n" +
		"• HH:MM (e.g. 07:32)\n" +
		"• YYYY-MM-DD HH:MM (e.g. 2025-08-04 07:32)\n" +
		"Try again:"

	messageNoActiveNapNoHistory = "ℹ️ No active nap. Please tap “Nap-Start” first."

	csvExportFilename = "events.csv"
	csvExportCaption  = "Current log"
)

const displayTimeLayout = "2006-01-02 15:04"

func fmtLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(displayTimeLayout)
}

// fmtDuration renders whole seconds as H:MM, e.g. 2730 -> "0:45".
func fmtDuration(seconds int64) string {
	return fmt.Sprintf("%d:%02d", seconds/3600, (seconds%3600)/60)
}

func pickerPrompt(kind EventKind, base time.Time, loc *time.Location) string {
	return fmt.Sprintf("📅 %s – pick the correct time (default: %s)", kind, fmtLocal(base, loc))
}

func customPrompt(timezone string) string {
	return "⏰ Enter custom time:\n\n" +
		"• For today: HH:MM (e.g., 07:32)\n" +
		"• For specific date: YYYY-MM-DD HH:MM (e.g., 2025-08-04 07:32)\n\n" +
		fmt.Sprintf("All times are in the %s timezone.", timezone)
}

func confirmationText(kind EventKind, who string, t time.Time, loc *time.Location) string {
	return fmt.Sprintf("✅ %s by %s at %s (local time)", kind, who, fmtLocal(t, loc))
}

func napStartedMessage(who string, t time.Time, loc *time.Location) string {
	return fmt.Sprintf("✅ Nap-Start by %s at %s (local time). Nap started.", who, fmtLocal(t, loc))
}

func duplicateNapStartMessage(existing time.Time, loc *time.Location) string {
	return fmt.Sprintf("ℹ️ A nap start was already recorded at %s.", fmtLocal(existing, loc))
}

func noActiveNapMessage(lastStart *time.Time, loc *time.Location) string {
	if lastStart == nil {
		return messageNoActiveNapNoHistory
	}
	return fmt.Sprintf("ℹ️ No active nap. A nap end may have already been recorded.\nLast nap start was at %s.", fmtLocal(*lastStart, loc))
}

func chronologyErrorMessage(start, stop time.Time, loc *time.Location) string {
	return fmt.Sprintf("❌ The selected end time (%s) is before the start (%s).\nPlease pick a correct end time.",
		fmtLocal(stop, loc), fmtLocal(start, loc))
}

func napSavedMessage(who string, start, stop time.Time, durationSeconds int64, loc *time.Location) string {
	return fmt.Sprintf("✅ Nap saved for %s:\n• Start: %s\n• End:   %s\n• Duration: %s (h:mm)",
		who, fmtLocal(start, loc), fmtLocal(stop, loc), fmtDuration(durationSeconds))
}
