package queries_test

import (
	"context"
	"testing"

	"fooddelivery/internal/adapters/out/postgres/productrepo"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetMenuQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetMenuQueryHandler
	menuRepo  *productrepo.GormMenuRepository
}

func (suite *GetMenuQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, db, err := startPostgres(ctx)
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	err = db.AutoMigrate(&productrepo.ProductDTO{}, &productrepo.ExtraDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetMenuQueryHandler(db)
	suite.menuRepo = productrepo.NewGormMenuRepository(db, &mockAggregateTracker{})
}

func (suite *GetMenuQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetMenuQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products, extras").Error
	suite.Require().NoError(err)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_EmptyCatalog_ReturnsEmptyMenu() {
	menu, err := suite.handler.Handle(context.Background(), queries.NewGetMenuQuery())

	suite.Require().NoError(err)
	suite.Empty(menu.Products)
	suite.Empty(menu.Extras)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_ReturnsCatalogSortedByName() {
	ctx := context.Background()

	for _, spec := range []struct {
		name     string
		price    string
		category string
	}{
		{"Pizza", "12.00", "mains"},
		{"Hamburger", "8.00", "mains"},
		{"Salad", "6.00", "light"},
	} {
		p, err := product.RestoreProduct(
			kernel.NewUUID(), spec.name, mustParseMoney(spec.price), "", spec.category, true)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.menuRepo.AddProduct(ctx, p))
	}

	e, err := product.NewExtra(kernel.NewUUID(), "extra cheese", mustParseMoney("2.50"), "cheese")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.menuRepo.AddExtra(ctx, e))

	menu, err := suite.handler.Handle(context.Background(), queries.NewGetMenuQuery())

	suite.Require().NoError(err)
	suite.Require().Len(menu.Products, 3)
	suite.Equal("Hamburger", menu.Products[0].Name)
	suite.Equal("Pizza", menu.Products[1].Name)
	suite.Equal("Salad", menu.Products[2].Name)
	suite.Equal(int64(800), menu.Products[0].BasePrice.Cents())
	suite.Equal("mains", menu.Products[0].Category)
	suite.True(menu.Products[0].Available)

	suite.Require().Len(menu.Extras, 1)
	suite.Equal("extra cheese", menu.Extras[0].Name)
	suite.Equal(int64(250), menu.Extras[0].Price.Cents())
}

func TestGetMenuQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMenuQueryHandlerTestSuite))
}
