package db

import (
	"context"

	"github.com/google/uuid"
)

// PublicationGroup is one publication category with its records in the
// order they render (descending year).
type PublicationGroup struct {
	Type  ReferenceType `json:"type"`
	Items []Reference   `json:"items"`
}

// Snapshot is a read-only view of every record the CV pipeline consumes,
// taken in one pass at the start of a run. Nothing in the pipeline writes
// back through it.
type Snapshot struct {
	Profile       *Profile                   `json:"profile"`
	Education     []Education                `json:"education"`
	Experience    []Experience               `json:"experience"`
	Publications  []PublicationGroup         `json:"publications"`
	Collaborators map[uuid.UUID]Collaborator `json:"collaborators"`
	Talks         []Talk                     `json:"talks"`
	Grants        []Grant                    `json:"grants"`
	Courses       []Course                   `json:"courses"`
	Services      []Service                  `json:"services"`
}

// LoadSnapshot fetches every record category in render order. It fails fast
// with ErrNoProfile before touching the other tables when no profile
// exists, so an aborted run performs no further work.
func (db *DB) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	profile, err := db.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Profile: profile}

	if snap.Education, err = db.ListEducation(ctx); err != nil {
		return nil, err
	}
	if snap.Experience, err = db.ListExperience(ctx); err != nil {
		return nil, err
	}
	for _, t := range ReferenceTypes {
		items, err := db.ListReferencesByType(ctx, t)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			continue
		}
		snap.Publications = append(snap.Publications, PublicationGroup{Type: t, Items: items})
	}

	collaborators, err := db.ListCollaborators(ctx)
	if err != nil {
		return nil, err
	}
	snap.Collaborators = make(map[uuid.UUID]Collaborator, len(collaborators))
	for _, c := range collaborators {
		snap.Collaborators[c.ID] = c
	}

	if snap.Talks, err = db.ListTalks(ctx); err != nil {
		return nil, err
	}
	if snap.Grants, err = db.ListGrants(ctx); err != nil {
		return nil, err
	}
	if snap.Courses, err = db.ListCourses(ctx); err != nil {
		return nil, err
	}
	if snap.Services, err = db.ListServices(ctx); err != nil {
		return nil, err
	}

	return snap, nil
}
