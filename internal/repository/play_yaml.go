package repository

import (
	"context"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/stagebill/stagebill/internal/config"
	"github.com/stagebill/stagebill/internal/domain/play"
	ierr "github.com/stagebill/stagebill/internal/errors"
	"github.com/stagebill/stagebill/internal/logger"
	"github.com/stagebill/stagebill/internal/types"
)

// catalogFile is the on-disk shape of the play catalog. Keys are play ids.
type catalogFile struct {
	Plays map[string]catalogEntry `yaml:"plays"`
}

type catalogEntry struct {
	Name  string      `yaml:"name"`
	Genre types.Genre `yaml:"genre"`
}

// yamlPlayRepository is a read-only catalog loaded once at startup.
type yamlPlayRepository struct {
	plays map[string]*play.Play
}

// NewPlayRepository builds the catalog repository from configuration.
func NewPlayRepository(cfg *config.Configuration, log *logger.Logger) (play.Repository, error) {
	return NewYAMLPlayRepository(cfg.Catalog.Path, log)
}

// NewYAMLPlayRepository loads the catalog from a YAML file. Plays with
// unregistered genres are loaded as-is; the pricing lookup rejects them
// when a statement actually references one.
func NewYAMLPlayRepository(path string, log *logger.Logger) (play.Repository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Could not read catalog file %s", path).
			Mark(ierr.ErrSystem)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Catalog file %s is not valid YAML", path).
			Mark(ierr.ErrValidation)
	}
	if len(file.Plays) == 0 {
		return nil, ierr.NewErrorf("catalog file %s has no plays", path).
			WithHint("The catalog must define at least one play").
			Mark(ierr.ErrValidation)
	}

	plays := make(map[string]*play.Play, len(file.Plays))
	for id, entry := range file.Plays {
		if entry.Name == "" {
			return nil, ierr.NewErrorf("play %s has no name", id).
				WithHintf("Play %s must have a display name", id).
				Mark(ierr.ErrValidation)
		}
		if err := entry.Genre.Validate(); err != nil {
			log.Warnw("catalog entry has unregistered genre",
				"play_id", id,
				"genre", entry.Genre,
			)
		}
		plays[id] = &play.Play{
			ID:    id,
			Name:  entry.Name,
			Genre: entry.Genre,
		}
	}

	log.Infow("play catalog loaded", "path", path, "plays", len(plays))
	return &yamlPlayRepository{plays: plays}, nil
}

func (r *yamlPlayRepository) Get(ctx context.Context, id string) (*play.Play, error) {
	p, ok := r.plays[id]
	if !ok {
		return nil, ierr.NewErrorf("%s: unknown play id", id).
			WithHintf("Play %s is not in the catalog", id).
			WithReportableDetails(map[string]any{
				"play_id": id,
			}).
			Mark(ierr.ErrPlayNotFound)
	}
	return p, nil
}

func (r *yamlPlayRepository) List(ctx context.Context) ([]*play.Play, error) {
	result := make([]*play.Play, 0, len(r.plays))
	for _, p := range r.plays {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}
