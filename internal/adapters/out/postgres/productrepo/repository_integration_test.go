package productrepo_test

import (
	"context"
	"testing"
	"time"

	"fastfood/internal/adapters/out/postgres/productrepo"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/product"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductRepositoryIntegrationTestSuite provides integration tests for the
// catalog-backed product gateway.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
	suite.repository = productrepo.NewGormProductRepository(suite.db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	item := suite.createTestProduct("X-Burger", product.Lanche, "29.90")

	suite.Require().NoError(suite.repository.Add(ctx, item))

	found, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.True(found.IsEqual(item))
	suite.Equal("X-Burger", found.Name())
	suite.Equal(product.Lanche, found.Category())
	suite.Equal(int64(2990), found.Price().Cents())
	suite.Equal(item.Ingredients(), found.Ingredients())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByCategory_FiltersAndSorts() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestProduct("Suco", product.Bebida, "7.00")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestProduct("Agua", product.Bebida, "4.00")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestProduct("Fritas", product.Acompanhamento, "12.00")))

	drinks, err := suite.repository.GetByCategory(ctx, product.Bebida)
	suite.Require().NoError(err)
	suite.Require().Len(drinks, 2)
	suite.Equal("Agua", drinks[0].Name())
	suite.Equal("Suco", drinks[1].Name())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByCategory_EmptySection() {
	ctx := context.Background()

	items, err := suite.repository.GetByCategory(ctx, product.Acompanhamento)
	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(
	name string,
	category product.Category,
	price string,
) *product.Product {
	amount, err := kernel.ParseMoney(price)
	suite.Require().NoError(err)

	item, err := product.NewProduct(
		kernel.NewUUID(),
		name,
		name+".png",
		"Test description",
		category,
		amount,
		[]string{"first", "second"},
		time.Now(),
	)
	suite.Require().NoError(err)
	return item
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
