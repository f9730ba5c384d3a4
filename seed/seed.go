// Package seed bootstraps an empty database with a default admin account
// and sample catalog data. Every step is idempotent: existing rows are
// left alone.
package seed

import (
	"log"

	"github.com/qimma-sa/kitchens-api/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var placeholderImages = []string{
	"https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1556909172-54557c7e4fb7?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1565538810643-b5bdb714032a?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1600585152220-90363fe7e115?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1600573472592-401b489a3cdc?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1600566752355-35792bedcfea?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1600585152915-d208bec867a1?w=800&h=600&fit=crop",
}

type seedProduct struct {
	titleAr       string
	descriptionAr string
	categoryIdx   int
	materialType  string
	pricePerMeter string // empty means custom price
	isCustomPrice bool
	isFeatured    bool
	colors        []string
}

var seedProducts = []seedProduct{
	{"مطبخ ألمنيوم عصري", "مطبخ عصري مصنوع من الألمنيوم عالي الجودة مع تشطيبات ممتازة وتصميم أنيق يناسب المنازل الحديثة", 0, models.MaterialAluminum, "1500", false, true, []string{"أبيض", "فضي", "رمادي"}},
	{"مطبخ خشب طبيعي", "مطبخ من الخشب الطبيعي الفاخر مع تشطيبات يدوية دقيقة ولمسة كلاسيكية راقية", 1, models.MaterialWood, "2200", false, true, []string{"بني فاتح", "بني غامق", "أوك"}},
	{"مطبخ صاج مقاوم للصدأ", "مطبخ صاج عالي الجودة مقاوم للصدأ والرطوبة مثالي للمطابخ التجارية والمنزلية", 2, models.MaterialSteel, "1200", false, false, []string{"فضي", "أسود"}},
	{"مطبخ فورميكا اقتصادي", "مطبخ فورميكا عملي واقتصادي مع خيارات ألوان متعددة وسهولة في الصيانة", 2, models.MaterialFormica, "800", false, false, []string{"أبيض", "كريمي", "بيج"}},
	{"مطبخ ألمنيوم فاخر", "مطبخ ألمنيوم فاخر مع إضاءة LED مدمجة وأدراج ناعمة الإغلاق وتصميم إيطالي", 3, models.MaterialAluminum, "2500", false, true, []string{"أبيض لامع", "أسود مطفي", "ذهبي"}},
	{"مطبخ خشب زان طبيعي", "مطبخ من خشب الزان الطبيعي الأصلي مع رخام طبيعي وتفاصيل نحاسية أنيقة", 3, models.MaterialWood, "", true, true, []string{"زان طبيعي", "ماهوجني"}},
	{"مطبخ صاج مودرن", "تصميم حديث من الصاج المعالج مع زجاج ملون وإضاءة جانبية", 0, models.MaterialSteel, "1800", false, false, []string{"رمادي", "أزرق"}},
	{"مطبخ فورميكا حديث", "مطبخ فورميكا بتصميم عصري وألوان جريئة مناسب للشباب والعائلات الصغيرة", 0, models.MaterialFormica, "950", false, false, []string{"أخضر", "أزرق", "برتقالي"}},
	{"مطبخ ألمنيوم كلاسيكي", "مطبخ ألمنيوم بلمسة كلاسيكية راقية مع مقابض نحاسية وزجاج منقوش", 1, models.MaterialAluminum, "1700", false, false, []string{"أبيض عاجي", "ذهبي عتيق"}},
	{"مطبخ خشب أمريكي", "مطبخ من خشب البلوط الأمريكي مع سطح جرانيت وتجهيزات ألمانية", 3, models.MaterialWood, "3200", false, true, []string{"بلوط طبيعي", "بلوط مدخن"}},
}

// Run seeds the admin account, categories and sample products.
func Run(db *gorm.DB) error {
	log.Println("🌱 Seeding database...")

	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedCatalog(db); err != nil {
		return err
	}

	log.Println("🎉 Seeding completed!")
	return nil
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️ Admin user already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		return err
	}
	admin := models.AdminUser{Email: "admin@qimma.sa", PasswordHash: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("✅ Admin user created: admin@qimma.sa / admin123")
	return nil
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️ Catalog already seeded")
		return nil
	}

	categories := []models.Category{
		{NameAr: "مطابخ عصرية", Slug: "modern-kitchens"},
		{NameAr: "مطابخ كلاسيكية", Slug: "classic-kitchens"},
		{NameAr: "مطابخ صغيرة", Slug: "small-kitchens"},
		{NameAr: "مطابخ فاخرة", Slug: "luxury-kitchens"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	log.Printf("✅ Created %d categories", len(categories))

	for i, sp := range seedProducts {
		product := models.Product{
			TitleAr:       sp.titleAr,
			DescriptionAr: sp.descriptionAr,
			CategoryID:    &categories[sp.categoryIdx].ID,
			MaterialType:  sp.materialType,
			IsCustomPrice: sp.isCustomPrice,
			IsFeatured:    sp.isFeatured,
		}
		if sp.pricePerMeter != "" {
			price, err := decimal.NewFromString(sp.pricePerMeter)
			if err != nil {
				return err
			}
			product.PricePerMeter = decimal.NullDecimal{Decimal: price, Valid: true}
		}
		product.Images = []models.ProductImage{
			{URL: placeholderImages[i%len(placeholderImages)]},
			{URL: placeholderImages[(i+1)%len(placeholderImages)]},
		}
		for _, color := range sp.colors {
			product.Colors = append(product.Colors, models.ProductColor{ColorNameAr: color})
		}
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Created %d products with images and colors", len(seedProducts))
	return nil
}
