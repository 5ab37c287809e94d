package documents

import (
	"fmt"

	"carelink/models"
)

// Ledger tracks a facility's document slots on the editing side: which files
// already live on the server, which uploads are staged, which existing files
// the user removed, and the server's per-file review records merged in
// read-only. It never produces verification state of its own.
type Ledger struct {
	slots        map[string][]models.FileRef
	verification models.DocumentVerification
	deleted      map[string][]string
}

// SlotOutbound is what one slot contributes to a save: the existing paths
// that survive (the server computes removals by set difference) and the newly
// staged uploads to attach as file parts. No explicit deleted list travels.
type SlotOutbound struct {
	Existing []string
	Uploads  []models.FileRef
}

// NewLedger builds a ledger from a server document record. A nil record
// starts every slot empty.
func NewLedger(record *models.DocumentRecord) *Ledger {
	l := &Ledger{
		slots:        make(map[string][]models.FileRef),
		verification: models.DocumentVerification{},
		deleted:      make(map[string][]string),
	}
	for _, slot := range models.DocumentSlots() {
		l.slots[slot] = []models.FileRef{}
	}
	if record == nil {
		return l
	}
	for slot, paths := range record.Slots {
		if !models.KnownDocumentSlot(slot) {
			continue
		}
		for _, path := range paths {
			l.slots[slot] = append(l.slots[slot], models.FileRef{
				Path:       path,
				Name:       displayName(path),
				IsExisting: true,
			})
		}
	}
	l.MergeVerification(record.Verification)
	return l
}

func displayName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}

// Files returns the current file list of a slot.
func (l *Ledger) Files(slot string) []models.FileRef {
	return l.slots[slot]
}

// MergeVerification replaces the server-reported review records.
func (l *Ledger) MergeVerification(v models.DocumentVerification) {
	if v == nil {
		return
	}
	l.verification = v
}

// Status looks up the review outcome for a file. Files the server has no
// record for yet (for example a fresh upload) default to pending.
func (l *Ledger) Status(slot, path string) (models.VerificationStatus, string) {
	sv, ok := l.verification[slot]
	if !ok {
		return models.VerificationPending, ""
	}
	for _, f := range sv.Files {
		if f.FilePath == path {
			return f.Status, f.Notes
		}
	}
	return models.VerificationPending, ""
}

// StageUpload adds a newly selected file to a slot. Existing paths stay
// unique per slot; staging a duplicate of a persisted path is rejected.
func (l *Ledger) StageUpload(slot string, ref models.FileRef) error {
	if !models.KnownDocumentSlot(slot) {
		return fmt.Errorf("unknown document slot %q", slot)
	}
	ref.IsExisting = false
	if ref.Path != "" {
		for _, existing := range l.slots[slot] {
			if existing.Path == ref.Path {
				return fmt.Errorf("file %q is already present in slot %s", ref.Path, slot)
			}
		}
	}
	l.slots[slot] = append(l.slots[slot], ref)
	return nil
}

// Remove drops a file from a slot. Removing a persisted file also records its
// path in the deleted-files structure; a staged upload is simply discarded.
func (l *Ledger) Remove(slot, path string) bool {
	files := l.slots[slot]
	for i, f := range files {
		if f.Path == path {
			l.slots[slot] = append(files[:i:i], files[i+1:]...)
			if f.IsExisting {
				l.deleted[slot] = append(l.deleted[slot], path)
			}
			return true
		}
	}
	return false
}

// DeletedFiles returns the removed existing paths per slot. This structure is
// tracked client-side only; removal reaches the server implicitly through a
// path's absence from the outbound surviving list.
func (l *Ledger) DeletedFiles() map[string][]string {
	out := make(map[string][]string, len(l.deleted))
	for slot, paths := range l.deleted {
		cp := make([]string, len(paths))
		copy(cp, paths)
		out[slot] = cp
	}
	return out
}

// Outbound computes the save payload for every slot: surviving existing
// paths, deduplicated, plus the staged uploads.
func (l *Ledger) Outbound() map[string]SlotOutbound {
	out := make(map[string]SlotOutbound, len(l.slots))
	for slot, files := range l.slots {
		var sb SlotOutbound
		seen := make(map[string]bool)
		for _, f := range files {
			if f.IsExisting {
				if seen[f.Path] {
					continue
				}
				seen[f.Path] = true
				sb.Existing = append(sb.Existing, f.Path)
			} else {
				sb.Uploads = append(sb.Uploads, f)
			}
		}
		out[slot] = sb
	}
	return out
}
