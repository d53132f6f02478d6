package accounts

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/bsky-accounts-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now    time.Time
	Active domain.DID
}

func renderView(list []domain.Account, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Bluesky Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(list))),
	}

	if len(list) == 0 {
		lines = append(lines, s.empty.Render("No accounts stored. Run `ba login` to add one."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, account := range list {
		lines = append(lines, s.section.Render(renderAccount(account, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(account domain.Account, opts RenderOptions, s styles) string {
	parts := []string{s.handle.Render(accountTitle(account, opts, s))}

	parts = append(parts, s.meta.Render(string(account.DID)))
	parts = append(parts, s.detail.Render(fmt.Sprintf("service: %s", account.Service)))
	parts = append(parts, s.detail.Render(fmt.Sprintf("auth: %s", authLabel(account))))

	if line := sessionLine(account, opts, s); line != "" {
		parts = append(parts, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func accountTitle(account domain.Account, opts RenderOptions, s styles) string {
	title := account.Session.Handle
	if title == "" {
		title = string(account.DID)
	}

	if account.Profile != nil && strings.TrimSpace(account.Profile.DisplayName) != "" {
		title = fmt.Sprintf("%s (%s)", strings.TrimSpace(account.Profile.DisplayName), title)
	}

	if account.DID == opts.Active {
		title += " " + s.active.Render("[active]")
	}

	return title
}

func authLabel(account domain.Account) string {
	if account.IsAppPassword {
		return "app password"
	}

	return "account password"
}

func sessionLine(account domain.Account, opts RenderOptions, s styles) string {
	expiry := domain.AccessTokenExpiry(account.Session.AccessJwt)
	if expiry.IsZero() {
		return ""
	}

	if opts.Now.IsZero() || expiry.After(opts.Now) {
		return s.meta.Render(fmt.Sprintf("session: %s", formatExpiryRelative(expiry, opts.Now)))
	}

	return s.warning.Render("session: expired, will refresh on next use")
}

func formatExpiryRelative(expiry, now time.Time) string {
	if now.IsZero() {
		return "expires " + expiry.Format(time.RFC3339)
	}

	remaining := expiry.Sub(now)
	if remaining < time.Hour {
		minutes := int(math.Ceil(remaining.Minutes()))
		if minutes < 1 {
			minutes = 1
		}
		return fmt.Sprintf("expires in %dm", minutes)
	}

	hours := int(math.Ceil(remaining.Hours()))
	return fmt.Sprintf("expires in %dh", hours)
}
