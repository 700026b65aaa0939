package main

import (
	"context"
	"log"
	"time"

	"allservices/config"
	"allservices/database"
	bookingRepoPkg "allservices/database/repository/booking"
	reviewRepoPkg "allservices/database/repository/review"
	serviceRepoPkg "allservices/database/repository/service"
	userRepoPkg "allservices/database/repository/user"
	"allservices/models"
	"allservices/services/review"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "password123"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	config.LoadConfig()
	database.InitDB()

	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// Reviews go through the service layer so the denormalized rating
	// aggregates get recomputed the same way they do in production.
	reviewService := &review.DefaultReviewService{
		Repo:        reviewRepo,
		BookingRepo: bookingRepo,
		ServiceRepo: serviceRepo,
		UserRepo:    userRepo,
	}

	gofakeit.Seed(time.Now().UnixNano())
	ctx := context.Background()

	providers, err := seedUsers(ctx, userRepo, models.RoleProvider, 8)
	if err != nil {
		log.Fatalf("seed providers: %v", err)
	}
	clients, err := seedUsers(ctx, userRepo, models.RoleClient, 20)
	if err != nil {
		log.Fatalf("seed clients: %v", err)
	}
	services, err := seedServices(ctx, serviceRepo, providers)
	if err != nil {
		log.Fatalf("seed services: %v", err)
	}
	bookings, err := seedBookings(ctx, bookingRepo, clients, services)
	if err != nil {
		log.Fatalf("seed bookings: %v", err)
	}
	if err := seedReviews(ctx, reviewService, bookings); err != nil {
		log.Fatalf("seed reviews: %v", err)
	}

	log.Println("seed complete")
}

func seedUsers(ctx context.Context, repo userRepoPkg.UserRepository, role string, count int) ([]models.User, error) {
	log.Printf("seeding %d %ss", count, role)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		u := models.User{
			Name:         gofakeit.Name(),
			Email:        gofakeit.Email(),
			PasswordHash: string(hash),
			Role:         role,
			Phone:        gofakeit.Phone(),
			Address: models.Address{
				Street:  gofakeit.Street(),
				City:    gofakeit.City(),
				State:   gofakeit.State(),
				Zipcode: gofakeit.Zip(),
				Country: "US",
			},
		}
		if role == models.RoleProvider {
			u.Bio = gofakeit.Sentence(12)
		}
		if err := repo.Create(ctx, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func seedServices(ctx context.Context, repo serviceRepoPkg.ServiceRepository, providers []models.User) ([]models.Service, error) {
	priceTypes := []string{models.PriceTypeHourly, models.PriceTypeFixed, models.PriceTypeDaily}

	services := make([]models.Service, 0, len(providers)*2)
	for _, p := range providers {
		for i := 0; i < 2; i++ {
			category := models.ServiceCategories[gofakeit.Number(0, len(models.ServiceCategories)-1)]
			svc := models.Service{
				Name:        gofakeit.JobTitle() + " services",
				Category:    category,
				Description: gofakeit.Paragraph(1, 3, 10, " "),
				ProviderID:  p.ID,
				Price:       float64(gofakeit.Number(20, 300)),
				PriceType:   priceTypes[gofakeit.Number(0, len(priceTypes)-1)],
				IsActive:    true,
			}
			if err := repo.Create(ctx, &svc); err != nil {
				return nil, err
			}
			services = append(services, svc)
		}
	}

	log.Printf("services seeded: %d", len(services))
	return services, nil
}

func seedBookings(ctx context.Context, repo bookingRepoPkg.BookingRepository, clients []models.User, services []models.Service) ([]models.Booking, error) {
	statuses := []string{
		models.BookingPending,
		models.BookingConfirmed,
		models.BookingCompleted,
		models.BookingCompleted,
		models.BookingCancelled,
	}

	bookings := make([]models.Booking, 0, len(clients)*3)
	for _, c := range clients {
		for i := 0; i < 3; i++ {
			svc := services[gofakeit.Number(0, len(services)-1)]
			date := gofakeit.DateRange(time.Now().AddDate(0, -2, 0), time.Now().AddDate(0, 1, 0))
			b := models.Booking{
				ServiceID:     svc.ID,
				ClientID:      c.ID,
				ProviderID:    svc.ProviderID,
				Date:          date.Format("2006-01-02"),
				StartTime:     "09:00",
				EndTime:       "11:00",
				Location:      c.Address,
				Status:        statuses[gofakeit.Number(0, len(statuses)-1)],
				TotalPrice:    svc.Price * 2,
				PaymentStatus: models.PaymentPending,
				PaymentMethod: models.PaymentMethods[gofakeit.Number(0, len(models.PaymentMethods)-1)],
			}
			if b.Status == models.BookingCompleted {
				b.PaymentStatus = models.PaymentCompleted
			}
			if err := repo.Create(ctx, &b); err != nil {
				return nil, err
			}
			bookings = append(bookings, b)
		}
	}

	log.Printf("bookings seeded: %d", len(bookings))
	return bookings, nil
}

func seedReviews(ctx context.Context, svc review.ReviewService, bookings []models.Booking) error {
	count := 0
	for _, b := range bookings {
		if b.Status != models.BookingCompleted || gofakeit.Number(0, 2) == 0 {
			continue
		}
		_, err := svc.Create(ctx, b.ClientID, review.CreateInput{
			ServiceID:     b.ServiceID,
			BookingID:     b.ID,
			Rating:        gofakeit.Number(3, 5),
			Comment:       gofakeit.Sentence(10),
			WorkQuality:   gofakeit.Number(3, 5),
			Communication: gofakeit.Number(3, 5),
			Punctuality:   gofakeit.Number(3, 5),
			IsAnonymous:   gofakeit.Bool(),
		})
		if err != nil {
			return err
		}
		count++
	}

	log.Printf("reviews seeded: %d", count)
	return nil
}
