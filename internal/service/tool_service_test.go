package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entity "moteka/internal/domain"
)

type fakeToolRepo struct {
	tools      map[int64]*entity.Tool
	lastFilter *entity.ToolStatus
	filtered   bool
}

func (f *fakeToolRepo) List(status *entity.ToolStatus) ([]entity.Tool, error) {
	f.lastFilter = status
	f.filtered = true
	return []entity.Tool{}, nil
}

func (f *fakeToolRepo) GetByID(id int64) (*entity.Tool, error) { return f.tools[id], nil }
func (f *fakeToolRepo) Create(t *entity.Tool) error {
	t.ID = 1
	f.tools[1] = t
	return nil
}
func (f *fakeToolRepo) Update(t *entity.Tool) error { return nil }
func (f *fakeToolRepo) Delete(id int64) error       { return nil }

func TestToolListFilterIsLenient(t *testing.T) {
	repo := &fakeToolRepo{tools: map[int64]*entity.Tool{}}
	svc := NewToolService(repo)

	_, err := svc.List("OPERATIVA")
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, entity.ToolOperational, *repo.lastFilter)

	// unrecognized values fall back to an unfiltered listing
	_, err = svc.List("ROTA")
	require.NoError(t, err)
	assert.Nil(t, repo.lastFilter)

	_, err = svc.List("")
	require.NoError(t, err)
	assert.Nil(t, repo.lastFilter)
}

func TestToolCreateRejectsUnknownStatus(t *testing.T) {
	repo := &fakeToolRepo{tools: map[int64]*entity.Tool{}}
	svc := NewToolService(repo)

	_, err := svc.Create(entity.ToolInput{Name: "Elevador", Status: "ROTA"})
	assert.Equal(t, entity.KindInvalidInput, entity.KindOf(err))

	tool, err := svc.Create(entity.ToolInput{Name: "Elevador"})
	require.NoError(t, err)
	assert.Equal(t, entity.ToolOperational, tool.Status)
	assert.Equal(t, 1, tool.Quantity)
}

func TestToolUpdatePartial(t *testing.T) {
	desc := "hidráulico"
	repo := &fakeToolRepo{tools: map[int64]*entity.Tool{
		1: {ID: 1, Name: "Elevador", Quantity: 2, Status: entity.ToolOperational},
	}}
	svc := NewToolService(repo)

	status := "EN_REPARACION"
	tool, err := svc.Update(1, entity.ToolUpdateInput{Status: &status, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, entity.ToolUnderRepair, tool.Status)
	assert.Equal(t, "Elevador", tool.Name)
	assert.Equal(t, 2, tool.Quantity)

	negative := -1
	_, err = svc.Update(1, entity.ToolUpdateInput{Quantity: &negative})
	assert.Equal(t, entity.KindInvalidInput, entity.KindOf(err))

	_, err = svc.Update(99, entity.ToolUpdateInput{})
	assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
}
