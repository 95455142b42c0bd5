package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
)

// MongoStore keeps one collection per entity plus a counters collection that
// hands out the integer ids the API exposes.
type MongoStore struct {
	client          *mongo.Client
	users           *mongo.Collection
	services        *mongo.Collection
	courses         *mongo.Collection
	bookings        *mongo.Collection
	enrollments     *mongo.Collection
	testimonials    *mongo.Collection
	contactMessages *mongo.Collection
	counters        *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	return &MongoStore{
		client:          client,
		users:           db.Collection("users"),
		services:        db.Collection("services"),
		courses:         db.Collection("courses"),
		bookings:        db.Collection("bookings"),
		enrollments:     db.Collection("enrollments"),
		testimonials:    db.Collection("testimonials"),
		contactMessages: db.Collection("contact_messages"),
		counters:        db.Collection("counters"),
	}, nil
}

func (s *MongoStore) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	unique := func(key string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}
	uniqueSparse := func(key string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		}
	}

	if _, err := s.services.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{unique("slug")}); err != nil {
		return err
	}
	if _, err := s.courses.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{unique("slug")}); err != nil {
		return err
	}
	if _, err := s.users.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		uniqueSparse("username"),
		uniqueSparse("openId"),
	}); err != nil {
		return err
	}
	if _, err := s.bookings.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}); err != nil {
		return err
	}
	if _, err := s.enrollments.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "enrollmentDate", Value: -1}}},
	}); err != nil {
		return err
	}
	return nil
}

// nextID allocates the next integer id for the named sequence.
func (s *MongoStore) nextID(ctx context.Context, sequence string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc struct {
		Value int64 `bson:"value"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": sequence},
		bson.M{"$inc": bson.M{"value": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Value, nil
}

func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// Users

func (s *MongoStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	id, err := s.nextID(ctx, "users")
	if err != nil {
		return models.User{}, err
	}
	user.ID = id
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoStore) userBy(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, filter).Decode(&user); err != nil {
		return models.User{}, mapErr(err)
	}
	return user, nil
}

func (s *MongoStore) UserByID(ctx context.Context, id int64) (models.User, error) {
	return s.userBy(ctx, bson.M{"_id": id})
}

func (s *MongoStore) UserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.userBy(ctx, bson.M{"username": username})
}

func (s *MongoStore) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.userBy(ctx, bson.M{"email": email})
}

func (s *MongoStore) UserByOpenID(ctx context.Context, openID string) (models.User, error) {
	return s.userBy(ctx, bson.M{"openId": openID})
}

func (s *MongoStore) UpsertOAuthUser(ctx context.Context, user models.User) (models.User, error) {
	existing, err := s.UserByOpenID(ctx, user.OpenID)
	if errors.Is(err, ErrNotFound) {
		user.LastSignedIn = time.Now()
		return s.CreateUser(ctx, user)
	}
	if err != nil {
		return models.User{}, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{
		"name":         user.Name,
		"email":        user.Email,
		"loginMethod":  user.LoginMethod,
		"lastSignedIn": time.Now(),
	}}
	var updated models.User
	if err := s.users.FindOneAndUpdate(ctx, bson.M{"_id": existing.ID}, update, opts).Decode(&updated); err != nil {
		return models.User{}, mapErr(err)
	}
	return updated, nil
}

func (s *MongoStore) TouchLastSignedIn(ctx context.Context, id int64) error {
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"lastSignedIn": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Services

func (s *MongoStore) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	cursor, err := s.services.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Service, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) ServiceByID(ctx context.Context, id int64) (models.Service, error) {
	var svc models.Service
	if err := s.services.FindOne(ctx, bson.M{"_id": id}).Decode(&svc); err != nil {
		return models.Service{}, mapErr(err)
	}
	return svc, nil
}

func (s *MongoStore) ServiceBySlug(ctx context.Context, slug string) (models.Service, error) {
	var svc models.Service
	if err := s.services.FindOne(ctx, bson.M{"slug": slug}).Decode(&svc); err != nil {
		return models.Service{}, mapErr(err)
	}
	return svc, nil
}

func (s *MongoStore) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	id, err := s.nextID(ctx, "services")
	if err != nil {
		return models.Service{}, err
	}
	svc.ID = id
	if _, err := s.services.InsertOne(ctx, svc); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

func (s *MongoStore) UpdateService(ctx context.Context, id int64, upd ServiceUpdate) (models.Service, error) {
	set := bson.M{}
	setIfString(set, "name", upd.Name)
	setIfString(set, "slug", upd.Slug)
	setIfString(set, "description", upd.Description)
	setIfString(set, "longDescription", upd.LongDescription)
	setIfString(set, "price", upd.Price)
	setIfString(set, "currency", upd.Currency)
	if upd.Duration != nil {
		set["duration"] = *upd.Duration
	}
	setIfString(set, "imageUrl", upd.ImageURL)
	setIfString(set, "category", upd.Category)
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	if len(set) == 0 {
		return s.ServiceByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var svc models.Service
	if err := s.services.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&svc); err != nil {
		return models.Service{}, mapErr(err)
	}
	return svc, nil
}

func (s *MongoStore) DeleteService(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, s.services, id)
}

// Courses

func (s *MongoStore) ListCourses(ctx context.Context, activeOnly bool) ([]models.Course, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	cursor, err := s.courses.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Course, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) CourseByID(ctx context.Context, id int64) (models.Course, error) {
	var course models.Course
	if err := s.courses.FindOne(ctx, bson.M{"_id": id}).Decode(&course); err != nil {
		return models.Course{}, mapErr(err)
	}
	return course, nil
}

func (s *MongoStore) CourseBySlug(ctx context.Context, slug string) (models.Course, error) {
	var course models.Course
	if err := s.courses.FindOne(ctx, bson.M{"slug": slug}).Decode(&course); err != nil {
		return models.Course{}, mapErr(err)
	}
	return course, nil
}

func (s *MongoStore) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	id, err := s.nextID(ctx, "courses")
	if err != nil {
		return models.Course{}, err
	}
	course.ID = id
	if _, err := s.courses.InsertOne(ctx, course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (s *MongoStore) UpdateCourse(ctx context.Context, id int64, upd CourseUpdate) (models.Course, error) {
	set := bson.M{}
	setIfString(set, "name", upd.Name)
	setIfString(set, "slug", upd.Slug)
	setIfString(set, "description", upd.Description)
	setIfString(set, "longDescription", upd.LongDescription)
	setIfString(set, "price", upd.Price)
	setIfString(set, "currency", upd.Currency)
	setIfString(set, "duration", upd.Duration)
	setIfString(set, "imageUrl", upd.ImageURL)
	setIfString(set, "trainerName", upd.TrainerName)
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	if len(set) == 0 {
		return s.CourseByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var course models.Course
	if err := s.courses.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&course); err != nil {
		return models.Course{}, mapErr(err)
	}
	return course, nil
}

func (s *MongoStore) DeleteCourse(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, s.courses, id)
}

// Bookings

func (s *MongoStore) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	id, err := s.nextID(ctx, "bookings")
	if err != nil {
		return models.Booking{}, err
	}
	booking.ID = id
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	if _, err := s.bookings.InsertOne(ctx, booking); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func (s *MongoStore) BookingByID(ctx context.Context, id int64) (models.Booking, error) {
	var booking models.Booking
	if err := s.bookings.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		return models.Booking{}, mapErr(err)
	}
	return booking, nil
}

func (s *MongoStore) BookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	return s.findBookings(ctx, bson.M{"userId": userID})
}

func (s *MongoStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.findBookings(ctx, bson.M{})
}

func (s *MongoStore) findBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.bookings.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Booking, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) UpdateBookingStatus(ctx context.Context, id int64, status, paymentStatus string) (models.Booking, error) {
	set := bson.M{"status": status}
	if paymentStatus != "" {
		set["paymentStatus"] = paymentStatus
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	if err := s.bookings.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&booking); err != nil {
		return models.Booking{}, mapErr(err)
	}
	return booking, nil
}

func (s *MongoStore) SetBookingPaymentSession(ctx context.Context, id int64, sessionID string) error {
	res, err := s.bookings.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"stripeSessionId": sessionID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteBooking(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, s.bookings, id)
}

// Enrollments

func (s *MongoStore) CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	id, err := s.nextID(ctx, "enrollments")
	if err != nil {
		return models.Enrollment{}, err
	}
	enrollment.ID = id
	if enrollment.EnrollmentDate.IsZero() {
		enrollment.EnrollmentDate = time.Now()
	}
	if _, err := s.enrollments.InsertOne(ctx, enrollment); err != nil {
		return models.Enrollment{}, err
	}
	return enrollment, nil
}

func (s *MongoStore) EnrollmentByID(ctx context.Context, id int64) (models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.enrollments.FindOne(ctx, bson.M{"_id": id}).Decode(&enrollment); err != nil {
		return models.Enrollment{}, mapErr(err)
	}
	return enrollment, nil
}

func (s *MongoStore) EnrollmentsByUser(ctx context.Context, userID int64) ([]models.Enrollment, error) {
	return s.findEnrollments(ctx, bson.M{"userId": userID})
}

func (s *MongoStore) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	return s.findEnrollments(ctx, bson.M{})
}

func (s *MongoStore) findEnrollments(ctx context.Context, filter bson.M) ([]models.Enrollment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "enrollmentDate", Value: -1}})
	cursor, err := s.enrollments.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Enrollment, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) UpdateEnrollmentStatus(ctx context.Context, id int64, status, paymentStatus string) (models.Enrollment, error) {
	set := bson.M{"status": status}
	if paymentStatus != "" {
		set["paymentStatus"] = paymentStatus
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var enrollment models.Enrollment
	if err := s.enrollments.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&enrollment); err != nil {
		return models.Enrollment{}, mapErr(err)
	}
	return enrollment, nil
}

func (s *MongoStore) SetEnrollmentPaymentSession(ctx context.Context, id int64, sessionID string) error {
	res, err := s.enrollments.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"stripeSessionId": sessionID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteEnrollment(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, s.enrollments, id)
}

// Testimonials

func (s *MongoStore) ListTestimonials(ctx context.Context, activeOnly bool) ([]models.Testimonial, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.testimonials.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Testimonial, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	id, err := s.nextID(ctx, "testimonials")
	if err != nil {
		return models.Testimonial{}, err
	}
	testimonial.ID = id
	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Now()
	}
	if _, err := s.testimonials.InsertOne(ctx, testimonial); err != nil {
		return models.Testimonial{}, err
	}
	return testimonial, nil
}

func (s *MongoStore) UpdateTestimonial(ctx context.Context, id int64, upd TestimonialUpdate) (models.Testimonial, error) {
	set := bson.M{}
	setIfString(set, "clientName", upd.ClientName)
	setIfString(set, "clientLocation", upd.ClientLocation)
	setIfString(set, "content", upd.Content)
	if upd.Rating != nil {
		set["rating"] = *upd.Rating
	}
	setIfString(set, "imageUrl", upd.ImageURL)
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	if len(set) == 0 {
		var t models.Testimonial
		if err := s.testimonials.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
			return models.Testimonial{}, mapErr(err)
		}
		return t, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t models.Testimonial
	if err := s.testimonials.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&t); err != nil {
		return models.Testimonial{}, mapErr(err)
	}
	return t, nil
}

func (s *MongoStore) DeleteTestimonial(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, s.testimonials, id)
}

// Contact messages

func (s *MongoStore) CreateContactMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	id, err := s.nextID(ctx, "contact_messages")
	if err != nil {
		return models.ContactMessage{}, err
	}
	msg.ID = id
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	if _, err := s.contactMessages.InsertOne(ctx, msg); err != nil {
		return models.ContactMessage{}, err
	}
	return msg, nil
}

func (s *MongoStore) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.contactMessages.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.ContactMessage, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) MarkContactMessageRead(ctx context.Context, id int64) error {
	res, err := s.contactMessages.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteContactMessage(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, s.contactMessages, id)
}

// Stats

func (s *MongoStore) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	var err error
	if stats.TotalBookings, err = s.bookings.CountDocuments(ctx, bson.M{}); err != nil {
		return Stats{}, err
	}
	if stats.ConfirmedBookings, err = s.bookings.CountDocuments(ctx, bson.M{"status": models.BookingStatusConfirmed}); err != nil {
		return Stats{}, err
	}
	if stats.TotalServices, err = s.services.CountDocuments(ctx, bson.M{}); err != nil {
		return Stats{}, err
	}
	if stats.TotalCourses, err = s.courses.CountDocuments(ctx, bson.M{}); err != nil {
		return Stats{}, err
	}
	if stats.TotalEnrollments, err = s.enrollments.CountDocuments(ctx, bson.M{}); err != nil {
		return Stats{}, err
	}
	if stats.UnreadMessages, err = s.contactMessages.CountDocuments(ctx, bson.M{"isRead": false}); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func (s *MongoStore) deleteByID(ctx context.Context, col *mongo.Collection, id int64) error {
	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func setIfString(set bson.M, key string, val *string) {
	if val != nil {
		set[key] = *val
	}
}
