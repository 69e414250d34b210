// Copyright (c) 2025 Boxoffice
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"io"
	"strings"

	apperrors "boxoffice/cli/internal/errors"

	"github.com/pterm/pterm"
)

// PresentError formats an error for user display with masking.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, Mask(err.Error()))
}

// ShowError writes a user-friendly explanation of err to w, with
// troubleshooting hints picked by the error's kind.
func ShowError(w io.Writer, context string, err error) {
	if err == nil {
		return
	}
	p := pterm.DefaultBasicText.WithWriter(w)

	switch apperrors.KindOf(err) {
	case apperrors.StoreUnavailable:
		p.Printf("🔐 Session storage is unavailable while %s\n", context)
		p.Println()
		p.Println("The configured store could not be opened. Please check:")
		p.Println("  • The OS keyring is unlocked (store: keyring)")
		p.Println("  • The redis server is reachable (store: redis)")
		p.Println("  • Or switch backends: boxoffice --store file ...")
	case apperrors.StoreRead, apperrors.StoreWrite:
		p.Printf("💾 Could not access the saved session while %s\n", context)
		p.Println()
		if isConnectionRefused(err) {
			p.Println("The store refused the connection. Is it running?")
		} else {
			p.Println("The store rejected the request. Check permissions and free space.")
		}
	case apperrors.NavigationFailed:
		p.Printf("🧭 Could not open the next screen while %s\n", context)
	case apperrors.InvalidConfig:
		p.Printf("⚙️  Invalid configuration while %s\n", context)
	default:
		p.Printf("❌ Failed while %s\n", context)
	}
	p.Println()
	p.Println(PresentError("details", err))
}

func isConnectionRefused(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}
