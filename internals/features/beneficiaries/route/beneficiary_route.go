package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/beneficiaries/controller"
	authMw "yachaywasi_backend/internals/middlewares/auth"
)

func BeneficiaryRoutes(app *fiber.App, db *gorm.DB) {
	bc := controller.NewBeneficiaryController(db)

	beneficiary := app.Group("/api/beneficiary", authMw.AuthMiddleware(db))
	beneficiary.Get("/page", bc.GetPage)
	beneficiary.Get("/enums", bc.GetEnums)
	beneficiary.Get("/find-one/:id", bc.FindOne)
	beneficiary.Post("/", bc.Create)
	beneficiary.Post("/upload-excel", bc.UploadExcel)
	beneficiary.Patch("/update/:id", bc.Update)
	beneficiary.Patch("/restore/:id", bc.Restore)
	beneficiary.Delete("/soft-delete/:id", bc.SoftDelete)
}
