package routes

import (
	"github.com/adrinata/go-catalog/app/configs"
	"github.com/adrinata/go-catalog/app/filters"
	"github.com/adrinata/go-catalog/app/handlers"
	"github.com/adrinata/go-catalog/app/middlewares"
	"github.com/adrinata/go-catalog/app/repositories"
	"github.com/adrinata/go-catalog/app/services"
	"github.com/adrinata/go-catalog/app/utils/renderer"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, cfg configs.ENV) *mux.Router {
	render := renderer.New()

	categoryRepo := repositories.NewCategoryRepository(db)
	categoryTypeRepo := repositories.NewCategoryTypeRepository(db)
	attributeRepo := repositories.NewAttributeRepository(db)
	attributeSetRepo := repositories.NewAttributeSetRepository(db)
	attributeValueRepo := repositories.NewAttributeValueRepository(db)
	productRepo := repositories.NewProductRepository(db)
	skuRepo := repositories.NewSKURepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	pricelistRepo := repositories.NewPricelistRepository(db)

	engine := filters.NewEngine(db, attributeRepo)

	categorySvc := services.NewCategoryService(db, categoryRepo, engine, cfg)
	attributeSvc := services.NewAttributeService(db, attributeRepo, attributeSetRepo, attributeValueRepo, categorySvc, productRepo, skuRepo, engine, cfg)
	productSvc := services.NewProductService(productRepo, categorySvc, engine, cfg)
	skuSvc := services.NewSKUService(skuRepo, productRepo, supplierRepo, categorySvc, engine, cfg)
	pricelistSvc := services.NewPricelistService(pricelistRepo, skuRepo, engine, cfg)

	categoryHandler := handlers.NewCategoryHandler(render, categorySvc, attributeSvc)
	categoryTypeHandler := handlers.NewCategoryTypeHandler(render, categoryTypeRepo, engine, cfg.MaxPageSize)
	attributeHandler := handlers.NewAttributeHandler(render, attributeSvc)
	attributeSetHandler := handlers.NewAttributeSetHandler(render, attributeSvc)
	productHandler := handlers.NewProductHandler(render, productSvc, attributeSvc)
	skuHandler := handlers.NewSKUHandler(render, skuSvc, attributeSvc, pricelistSvc)
	supplierHandler := handlers.NewSupplierHandler(render, supplierRepo, engine, cfg.MaxPageSize)
	pricelistHandler := handlers.NewPricelistHandler(render, pricelistSvc)

	router := mux.NewRouter()
	router.Use(middlewares.Logging, middlewares.Actor)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	api.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	api.HandleFunc("/categories/roots", categoryHandler.Roots).Methods("GET")
	api.HandleFunc("/categories/{id}", categoryHandler.Get).Methods("GET")
	api.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PUT")
	api.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")
	api.HandleFunc("/categories/{id}/move", categoryHandler.Move).Methods("PUT")
	api.HandleFunc("/categories/{id}/children", categoryHandler.Children).Methods("GET")
	api.HandleFunc("/categories/{id}/ancestors", categoryHandler.Ancestors).Methods("GET")
	api.HandleFunc("/categories/{id}/descendants", categoryHandler.Descendants).Methods("GET")
	api.HandleFunc("/categories/{id}/attributes", categoryHandler.EffectiveAttributes).Methods("GET")

	api.HandleFunc("/category-types", categoryTypeHandler.Create).Methods("POST")
	api.HandleFunc("/category-types", categoryTypeHandler.List).Methods("GET")
	api.HandleFunc("/category-types/{id}", categoryTypeHandler.Get).Methods("GET")
	api.HandleFunc("/category-types/{id}", categoryTypeHandler.Update).Methods("PUT")
	api.HandleFunc("/category-types/{id}", categoryTypeHandler.Delete).Methods("DELETE")

	api.HandleFunc("/attributes", attributeHandler.Create).Methods("POST")
	api.HandleFunc("/attributes", attributeHandler.List).Methods("GET")
	api.HandleFunc("/attributes/{id}", attributeHandler.Get).Methods("GET")
	api.HandleFunc("/attributes/{id}", attributeHandler.Update).Methods("PUT")
	api.HandleFunc("/attributes/{id}", attributeHandler.Delete).Methods("DELETE")

	api.HandleFunc("/attribute-sets", attributeSetHandler.Create).Methods("POST")
	api.HandleFunc("/attribute-sets", attributeSetHandler.List).Methods("GET")
	api.HandleFunc("/attribute-sets/{id}", attributeSetHandler.Get).Methods("GET")
	api.HandleFunc("/attribute-sets/{id}", attributeSetHandler.Update).Methods("PUT")
	api.HandleFunc("/attribute-sets/{id}", attributeSetHandler.Delete).Methods("DELETE")
	api.HandleFunc("/attribute-sets/{id}/attributes/{attributeID}", attributeSetHandler.AddAttribute).Methods("POST")
	api.HandleFunc("/attribute-sets/{id}/attributes/{attributeID}", attributeSetHandler.RemoveAttribute).Methods("DELETE")
	api.HandleFunc("/attribute-sets/{id}/categories/{categoryID}", attributeSetHandler.BindCategory).Methods("POST")
	api.HandleFunc("/attribute-sets/{id}/categories/{categoryID}", attributeSetHandler.UnbindCategory).Methods("DELETE")

	api.HandleFunc("/products", productHandler.Create).Methods("POST")
	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products/slug/{slug}", productHandler.GetBySlug).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.Get).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT")
	api.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")
	api.HandleFunc("/products/{id}/values", productHandler.GetValues).Methods("GET")
	api.HandleFunc("/products/{id}/values/{code}", productHandler.SetValue).Methods("PUT")
	api.HandleFunc("/products/{id}/values/{code}", productHandler.DeleteValue).Methods("DELETE")

	api.HandleFunc("/skus", skuHandler.Create).Methods("POST")
	api.HandleFunc("/skus", skuHandler.List).Methods("GET")
	api.HandleFunc("/skus/code/{code}", skuHandler.GetByCode).Methods("GET")
	api.HandleFunc("/skus/{id}", skuHandler.Get).Methods("GET")
	api.HandleFunc("/skus/{id}", skuHandler.Update).Methods("PUT")
	api.HandleFunc("/skus/{id}", skuHandler.Delete).Methods("DELETE")
	api.HandleFunc("/skus/{id}/values", skuHandler.GetValues).Methods("GET")
	api.HandleFunc("/skus/{id}/values/{code}", skuHandler.SetValue).Methods("PUT")
	api.HandleFunc("/skus/{id}/values/{code}", skuHandler.DeleteValue).Methods("DELETE")
	api.HandleFunc("/skus/{id}/price", skuHandler.ResolvePrice).Methods("GET")

	api.HandleFunc("/suppliers", supplierHandler.Create).Methods("POST")
	api.HandleFunc("/suppliers", supplierHandler.List).Methods("GET")
	api.HandleFunc("/suppliers/{id}", supplierHandler.Get).Methods("GET")
	api.HandleFunc("/suppliers/{id}", supplierHandler.Update).Methods("PUT")
	api.HandleFunc("/suppliers/{id}", supplierHandler.Delete).Methods("DELETE")

	api.HandleFunc("/pricelists", pricelistHandler.Create).Methods("POST")
	api.HandleFunc("/pricelists", pricelistHandler.List).Methods("GET")
	api.HandleFunc("/pricelists/{id}", pricelistHandler.Get).Methods("GET")
	api.HandleFunc("/pricelists/{id}", pricelistHandler.Update).Methods("PUT")
	api.HandleFunc("/pricelists/{id}", pricelistHandler.Delete).Methods("DELETE")
	api.HandleFunc("/pricelists/{id}/details", pricelistHandler.AddDetail).Methods("POST")
	api.HandleFunc("/pricelists/{id}/details", pricelistHandler.ListDetails).Methods("GET")
	api.HandleFunc("/pricelists/{id}/details/{detailID}", pricelistHandler.UpdateDetail).Methods("PUT")
	api.HandleFunc("/pricelists/{id}/details/{detailID}", pricelistHandler.RemoveDetail).Methods("DELETE")

	return router
}
