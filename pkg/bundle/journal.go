// ABOUTME: Journal aggregate (journal-level metadata and issue membership)
// ABOUTME: Validated subject areas, status history and keyed components

package bundle

import (
	"fmt"

	"github.com/nainya/docstore/pkg/manifest"
	"github.com/nainya/docstore/pkg/timeline"
)

// SubjectAreas is the closed vocabulary accepted by SetSubjectAreas.
var SubjectAreas = []string{
	"AGRICULTURAL SCIENCES",
	"APPLIED SOCIAL SCIENCES",
	"BIOLOGICAL SCIENCES",
	"ENGINEERING",
	"EXACT AND EARTH SCIENCES",
	"HEALTH SCIENCES",
	"HUMAN SCIENCES",
	"LINGUISTIC, LITERATURE AND ARTS",
}

// Journal groups issues under journal-level metadata: titles, ISSNs,
// publication status with full history, classification and contact data.
// Ahead-of-print and provisional references live in keyed components with
// no history.
type Journal struct {
	manifest manifest.Bundle
	now      timeline.Clock
}

// NewJournal creates an empty journal known by its id.
func NewJournal(id string, opts ...Option) *Journal {
	cfg := newConfig(opts)
	return &Journal{manifest: manifest.NewBundle(id, cfg.now), now: cfg.now}
}

// JournalFromManifest rehydrates a journal from a stored manifest.
func JournalFromManifest(m manifest.Bundle, opts ...Option) *Journal {
	cfg := newConfig(opts)
	return &Journal{manifest: m, now: cfg.now}
}

// ID returns the journal identity.
func (j *Journal) ID() string {
	return j.manifest.ID
}

// Created returns the creation instant of the journal manifest.
func (j *Journal) Created() string {
	return j.manifest.Created
}

// Updated returns the instant of the last accepted change.
func (j *Journal) Updated() string {
	return j.manifest.Updated
}

// Manifest returns a copy of the current manifest.
func (j *Journal) Manifest() manifest.Bundle {
	return j.manifest.Clone()
}

// Data returns the manifest with every metadata field collapsed to its
// latest value.
func (j *Journal) Data() manifest.Snapshot {
	return j.manifest.TakeSnapshot()
}

func (j *Journal) setString(name, value string) {
	j.manifest = j.manifest.SetMetadata(name, value, j.now)
}

func (j *Journal) Title() string         { return metadataString(j.manifest, "title") }
func (j *Journal) SetTitle(value string) { j.setString("title", value) }

func (j *Journal) TitleISO() string         { return metadataString(j.manifest, "title_iso") }
func (j *Journal) SetTitleISO(value string) { j.setString("title_iso", value) }

func (j *Journal) ShortTitle() string         { return metadataString(j.manifest, "short_title") }
func (j *Journal) SetShortTitle(value string) { j.setString("short_title", value) }

func (j *Journal) TitleSlug() string         { return metadataString(j.manifest, "title_slug") }
func (j *Journal) SetTitleSlug(value string) { j.setString("title_slug", value) }

func (j *Journal) Acronym() string         { return metadataString(j.manifest, "acronym") }
func (j *Journal) SetAcronym(value string) { j.setString("acronym", value) }

func (j *Journal) SciELOISSN() string         { return metadataString(j.manifest, "scielo_issn") }
func (j *Journal) SetSciELOISSN(value string) { j.setString("scielo_issn", value) }

func (j *Journal) PrintISSN() string         { return metadataString(j.manifest, "print_issn") }
func (j *Journal) SetPrintISSN(value string) { j.setString("print_issn", value) }

func (j *Journal) ElectronicISSN() string         { return metadataString(j.manifest, "electronic_issn") }
func (j *Journal) SetElectronicISSN(value string) { j.setString("electronic_issn", value) }

func (j *Journal) OnlineSubmissionURL() string { return metadataString(j.manifest, "online_submission_url") }
func (j *Journal) SetOnlineSubmissionURL(value string) {
	j.setString("online_submission_url", value)
}

func (j *Journal) LogoURL() string         { return metadataString(j.manifest, "logo_url") }
func (j *Journal) SetLogoURL(value string) { j.setString("logo_url", value) }

// Mission returns the latest language-to-mission mapping.
func (j *Journal) Mission() map[string]string {
	return metadataStringMap(j.manifest, "mission")
}

func (j *Journal) SetMission(mission map[string]string) {
	copied := make(map[string]string, len(mission))
	for lang, text := range mission {
		copied[lang] = text
	}
	j.manifest = j.manifest.SetMetadata("mission", copied, j.now)
}

// Status returns the latest status record.
func (j *Journal) Status() map[string]any {
	return metadataMap(j.manifest, "status")
}

// SetStatus appends a status record; earlier records stay reachable through
// StatusHistory.
func (j *Journal) SetStatus(status map[string]any) {
	copied := make(map[string]any, len(status))
	for k, v := range status {
		copied[k] = v
	}
	j.manifest = j.manifest.SetMetadata("status", copied, j.now)
}

// StatusHistory returns every status record ever set, oldest first.
func (j *Journal) StatusHistory() []timeline.Entry[any] {
	return j.manifest.GetMetadataAll("status").Entries()
}

// SubjectAreasList returns the latest subject areas.
func (j *Journal) SubjectAreasList() []string {
	return metadataStringSlice(j.manifest, "subject_areas")
}

// SetSubjectAreas records the journal's subject areas. Every area must be
// in the SubjectAreas vocabulary; otherwise nothing is recorded.
func (j *Journal) SetSubjectAreas(areas ...string) error {
	var invalid []string
	for _, area := range areas {
		known := false
		for _, valid := range SubjectAreas {
			if area == valid {
				known = true
				break
			}
		}
		if !known {
			invalid = append(invalid, area)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("cannot set subject_areas with value %q (%q are not valid): %w",
			areas, invalid, ErrInvalidValue)
	}
	copied := make([]string, len(areas))
	copy(copied, areas)
	j.manifest = j.manifest.SetMetadata("subject_areas", copied, j.now)
	return nil
}

// SubjectCategories returns the latest subject categories.
func (j *Journal) SubjectCategories() []string {
	return metadataStringSlice(j.manifest, "subject_categories")
}

func (j *Journal) SetSubjectCategories(categories ...string) {
	copied := make([]string, len(categories))
	copy(copied, categories)
	j.manifest = j.manifest.SetMetadata("subject_categories", copied, j.now)
}

// Sponsors returns the latest sponsor records.
func (j *Journal) Sponsors() []map[string]any {
	return metadataMapSlice(j.manifest, "sponsors")
}

func (j *Journal) SetSponsors(sponsors ...map[string]any) {
	copied := make([]map[string]any, len(sponsors))
	for i, sponsor := range sponsors {
		s := make(map[string]any, len(sponsor))
		for k, v := range sponsor {
			s[k] = v
		}
		copied[i] = s
	}
	j.manifest = j.manifest.SetMetadata("sponsors", copied, j.now)
}

// Metrics returns the latest metrics record.
func (j *Journal) Metrics() map[string]any {
	return metadataMap(j.manifest, "metrics")
}

func (j *Journal) SetMetrics(metrics map[string]any) {
	copied := make(map[string]any, len(metrics))
	for k, v := range metrics {
		copied[k] = v
	}
	j.manifest = j.manifest.SetMetadata("metrics", copied, j.now)
}

// InstitutionResponsibleFor returns the latest responsible institutions.
func (j *Journal) InstitutionResponsibleFor() []string {
	return metadataStringSlice(j.manifest, "institution_responsible_for")
}

func (j *Journal) SetInstitutionResponsibleFor(institutions ...string) {
	copied := make([]string, len(institutions))
	copy(copied, institutions)
	j.manifest = j.manifest.SetMetadata("institution_responsible_for", copied, j.now)
}

// Contact returns the latest contact record.
func (j *Journal) Contact() map[string]any {
	return metadataMap(j.manifest, "contact")
}

func (j *Journal) SetContact(contact map[string]any) {
	copied := make(map[string]any, len(contact))
	for k, v := range contact {
		copied[k] = v
	}
	j.manifest = j.manifest.SetMetadata("contact", copied, j.now)
}

// NextJournal returns the successor journal reference.
func (j *Journal) NextJournal() map[string]any {
	return metadataMap(j.manifest, "next_journal")
}

func (j *Journal) SetNextJournal(ref map[string]any) {
	copied := make(map[string]any, len(ref))
	for k, v := range ref {
		copied[k] = v
	}
	j.manifest = j.manifest.SetMetadata("next_journal", copied, j.now)
}

// PreviousJournal returns the predecessor journal reference.
func (j *Journal) PreviousJournal() map[string]any {
	return metadataMap(j.manifest, "previous_journal")
}

func (j *Journal) SetPreviousJournal(ref map[string]any) {
	copied := make(map[string]any, len(ref))
	for k, v := range ref {
		copied[k] = v
	}
	j.manifest = j.manifest.SetMetadata("previous_journal", copied, j.now)
}

// AddIssue appends an issue id. Duplicates are rejected.
func (j *Journal) AddIssue(issue string) error {
	m, err := j.manifest.AddItem(issue, j.now)
	if err != nil {
		return err
	}
	j.manifest = m
	return nil
}

// InsertIssue inserts an issue id at index, clamped to the list bounds.
func (j *Journal) InsertIssue(index int, issue string) error {
	m, err := j.manifest.InsertItem(index, issue, j.now)
	if err != nil {
		return err
	}
	j.manifest = m
	return nil
}

// RemoveIssue removes an issue id. Absent ids are rejected.
func (j *Journal) RemoveIssue(issue string) error {
	m, err := j.manifest.RemoveItem(issue, j.now)
	if err != nil {
		return err
	}
	j.manifest = m
	return nil
}

// Issues returns the ordered issue ids.
func (j *Journal) Issues() []string {
	items := make([]string, len(j.manifest.Items))
	copy(items, j.manifest.Items)
	return items
}

// Provisional returns the provisional reference, empty when unset.
func (j *Journal) Provisional() string {
	v, _ := j.manifest.GetComponent("provisional")
	s, _ := v.(string)
	return s
}

func (j *Journal) SetProvisional(value string) {
	j.manifest = j.manifest.SetComponent("provisional", value, j.now)
}

// AheadOfPrintBundle returns the id of the ahead-of-print bundle, empty
// when unset.
func (j *Journal) AheadOfPrintBundle() string {
	v, _ := j.manifest.GetComponent("aop")
	s, _ := v.(string)
	return s
}

func (j *Journal) SetAheadOfPrintBundle(id string) {
	j.manifest = j.manifest.SetComponent("aop", id, j.now)
}

// RemoveAheadOfPrintBundle drops the ahead-of-print reference. An absent
// reference is rejected.
func (j *Journal) RemoveAheadOfPrintBundle() error {
	m, err := j.manifest.RemoveComponent("aop", j.now)
	if err != nil {
		return err
	}
	j.manifest = m
	return nil
}
