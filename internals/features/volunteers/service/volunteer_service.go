package service

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	areaModel "yachaywasi_backend/internals/features/areas/model"
	"yachaywasi_backend/internals/features/volunteers/dto"
	"yachaywasi_backend/internals/features/volunteers/model"
	repo "yachaywasi_backend/internals/features/volunteers/repository"
	"yachaywasi_backend/internals/listkit"
)

var (
	ErrNotFound        = errors.New("volunteer not found")
	ErrAlreadyInStatus = errors.New("volunteer already in requested status")
)

/* ===============================
   Collection cache
=================================*/

// collection is the authoritative in-memory list the console pages read
// from. Loaded once at boot, then patched in place by the mutators —
// list and stats never re-query the table between mutations.
var collection = listkit.NewStore(func(v model.VolunteerModel) uint { return v.ID })

func WarmCollection(db *gorm.DB) {
	if err := ReloadCollection(db); err != nil {
		log.Printf("⚠️ volunteer collection warm-up failed: %v", err)
	} else {
		log.Printf("✅ volunteer collection loaded (%d records)", collection.Len())
	}
}

func ReloadCollection(db *gorm.DB) error {
	volunteers, err := repo.FindAll(db)
	if err != nil {
		return err
	}
	collection.Reset(volunteers)
	return nil
}

func snapshot(db *gorm.DB) ([]model.VolunteerModel, error) {
	if collection.Len() == 0 {
		if err := ReloadCollection(db); err != nil {
			return nil, err
		}
	}
	return collection.Snapshot(), nil
}

/* ===============================
   List & stats
=================================*/

// List runs the one centralized filter/paginate pass. The console
// resets its page to 1 whenever a filter input changes; here a stale
// page from a larger result set is clamped to the last page, so a held
// filter can still be paged through freely and no window renders empty.
func List(db *gorm.DB, q listkit.Query, page, perPage int) (dto.ListResponse, error) {
	all, err := snapshot(db)
	if err != nil {
		return dto.ListResponse{}, err
	}

	filtered := listkit.Filter(all, q)
	pg := listkit.Paginate(len(filtered), page, perPage)

	return dto.ListResponse{
		Data:       listkit.Slice(filtered, pg),
		Total:      len(filtered),
		Page:       pg.Page,
		Limit:      perPage,
		TotalPages: pg.TotalPages,
	}, nil
}

// Stats projects the whole collection for the dashboard. Derived from
// the unfiltered collection on purpose: the cards show global counts
// regardless of the active list filters.
func Stats(db *gorm.DB, year int) (dto.StatsResponse, error) {
	all, err := snapshot(db)
	if err != nil {
		return dto.StatsResponse{}, err
	}
	if year == 0 {
		year = time.Now().Year()
	}

	var areas []areaModel.AreaModel
	if err := db.Find(&areas).Error; err != nil {
		areas = areaModel.DefaultAreas
	}

	return dto.StatsResponse{
		Total:          len(all),
		CountsByStatus: listkit.CountBy(all, func(v model.VolunteerModel) string { return v.StatusVolunteer }),
		CountsByType:   listkit.CountBy(all, func(v model.VolunteerModel) string { return v.TypeVolunteer }),
		CountsByArea: listkit.CountBy(all, func(v model.VolunteerModel) string {
			return areaModel.NameByID(areas, v.IDPostulationArea)
		}),
		CountsByUniversity: listkit.CountBy(all, func(v model.VolunteerModel) string {
			if v.ProgramsUniversity == nil {
				return ""
			}
			return *v.ProgramsUniversity
		}),
		Year: year,
		CountsByMonth: listkit.CountByMonth(all, year, func(v model.VolunteerModel) time.Time {
			return v.DatePostulation
		}),
	}, nil
}

/* ===============================
   Detail mutators
=================================*/

// Each mutator performs exactly one write; only on success does the
// collection get reconciled, so a failed call leaves it untouched.

func Create(db *gorm.DB, v *model.VolunteerModel) error {
	if err := repo.Create(db, v); err != nil {
		return err
	}
	collection.Add(*v)
	return nil
}

func GetProfile(db *gorm.DB, id uint) (*model.VolunteerModel, error) {
	v, err := repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// Transition moves a volunteer to APPROVED or REJECTED. Repeating a
// transition the record is already in is refused without a write,
// mirroring the disabled approve/reject buttons in the console.
func Transition(db *gorm.DB, id uint, status string) (*model.VolunteerModel, error) {
	v, err := GetProfile(db, id)
	if err != nil {
		return nil, err
	}
	if v.StatusVolunteer == status {
		return nil, ErrAlreadyInStatus
	}
	if err := repo.UpdateStatus(db, id, status); err != nil {
		return nil, err
	}
	v.StatusVolunteer = status
	collection.Patch(id, func(cached *model.VolunteerModel) {
		cached.StatusVolunteer = status
	})
	return v, nil
}

func Update(db *gorm.DB, id uint, patch dto.UpdateVolunteerRequest) (*model.VolunteerModel, error) {
	if _, err := GetProfile(db, id); err != nil {
		return nil, err
	}
	updates := patch.Updates()
	if len(updates) > 0 {
		if err := repo.UpdateFields(db, id, updates); err != nil {
			return nil, err
		}
	}
	updated, err := repo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	collection.Patch(id, func(cached *model.VolunteerModel) {
		*cached = *updated
	})
	return updated, nil
}

func Delete(db *gorm.DB, id uint) error {
	if _, err := GetProfile(db, id); err != nil {
		return err
	}
	if err := repo.Delete(db, id); err != nil {
		return err
	}
	collection.Remove(id)
	return nil
}
