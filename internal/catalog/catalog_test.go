package catalog_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/trigger-overlay/internal/catalog"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func (s *CatalogTestSuite) SetupTest() {
	c, err := catalog.Load(filepath.Join("testdata", "catalog.yaml"))
	s.Require().NoError(err)
	s.catalog = c
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestLoad() {
	s.Equal(6, s.catalog.Len(gamestate.KindStatus))
	s.Equal(4, s.catalog.Len(gamestate.KindAbility))
	s.Equal(1, s.catalog.Len(gamestate.KindItem))
}

func (s *CatalogTestSuite) TestResolveByName() {
	got := s.catalog.ResolveDescriptors("  dIA ", gamestate.KindStatus)
	s.Require().Len(got, 1)
	s.Equal(1871, got[0].ID)
	s.Equal("Dia", got[0].Name)
}

func (s *CatalogTestSuite) TestResolveDuplicateNames() {
	got := s.catalog.ResolveDescriptors("swiftcast", gamestate.KindStatus)
	s.Require().Len(got, 2)
	s.Equal(167, got[0].ID)
	s.Equal(2779, got[1].ID)
}

func (s *CatalogTestSuite) TestResolveByID() {
	got := s.catalog.ResolveDescriptors("7432", gamestate.KindAbility)
	s.Require().Len(got, 1)
	s.Equal("Divine Benison", got[0].Name)

	s.Empty(s.catalog.ResolveDescriptors("7432", gamestate.KindStatus), "IDs are per kind")
}

func (s *CatalogTestSuite) TestResolveMiss() {
	s.Empty(s.catalog.ResolveDescriptors("Holy", gamestate.KindAbility))
	s.Empty(s.catalog.ResolveDescriptors("", gamestate.KindAbility))
	s.Empty(s.catalog.ResolveDescriptors("Dia", "mount"))
}

func (s *CatalogTestSuite) TestResolveReturnsCopies() {
	got := s.catalog.ResolveDescriptors("Maim", gamestate.KindAbility)
	s.Require().Len(got, 1)
	got[0].ComboIDs[0] = 99

	again := s.catalog.ResolveDescriptors("Maim", gamestate.KindAbility)
	s.Equal([]int{31}, again[0].ComboIDs)
}

func (s *CatalogTestSuite) TestSuggest() {
	got := s.catalog.Suggest("asize", gamestate.KindAbility, 3)
	s.Require().NotEmpty(got)
	s.Equal("Assize", got[0].Descriptor.Name)
	s.Equal(1, got[0].Distance)

	got = s.catalog.Suggest("swiftcats", gamestate.KindStatus, 5)
	s.Require().Len(got, 1, "duplicate names are suggested once")
	s.Equal("Swiftcast", got[0].Descriptor.Name)
}

func (s *CatalogTestSuite) TestSuggestPrefix() {
	got := s.catalog.Suggest("divine", gamestate.KindStatus, 3)
	s.Require().Len(got, 1)
	s.Equal("Divine Benison", got[0].Descriptor.Name)
}

func (s *CatalogTestSuite) TestSuggestNothingClose() {
	s.Empty(s.catalog.Suggest("Benediction", gamestate.KindAbility, 3))
	s.Empty(s.catalog.Suggest("Dia", gamestate.KindStatus, 0))
}

func TestLoad_Errors(t *testing.T) {
	_, err := catalog.Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.True(t, overlayerr.IsNotFound(err))

	_, err = catalog.Parse([]byte("statuses: {name: [}"))
	require.Error(t, err)
	assert.True(t, overlayerr.IsInvalidArgument(err))
}
