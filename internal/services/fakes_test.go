package services

import (
	"context"
	"sort"
	"time"

	"github.com/pixgram/backend/internal/apperrors"
	"github.com/pixgram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// In-memory repository fakes. The services are specified purely against
// the repository interfaces, so the graph/feed properties are tested here
// without a live database.

type fakePersonRepo struct {
	nextID uint
	people map[string]*models.Person
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{people: map[string]*models.Person{}}
}

func (r *fakePersonRepo) CreatePerson(person *models.Person) error {
	for _, p := range r.people {
		if p.Username == person.Username || p.Email == person.Email {
			return apperrors.ErrDuplicateIdentity
		}
	}
	r.nextID++
	person.ID = r.nextID
	r.people[person.Username] = person
	return nil
}

func (r *fakePersonRepo) GetPersonByID(id uint) (*models.Person, error) {
	for _, p := range r.people {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakePersonRepo) GetPersonByUsername(username string) (*models.Person, error) {
	if p, ok := r.people[username]; ok {
		return p, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakePersonRepo) GetPersonByEmail(email string) (*models.Person, error) {
	for _, p := range r.people {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakePersonRepo) UpdatePerson(person *models.Person) error {
	r.people[person.Username] = person
	return nil
}

type fakeFollowRepo struct {
	edges  map[[2]uint]bool
	people *fakePersonRepo
}

func newFakeFollowRepo(people *fakePersonRepo) *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[[2]uint]bool{}, people: people}
}

// Suggestions lives on the person repository but needs the follow edges;
// the fake keeps selection deterministic (no shuffle) so exclusion rules
// can be asserted.
func (r *fakePersonRepo) Suggestions(personID uint, limit int) ([]models.Person, error) {
	var people []models.Person
	for _, p := range r.people {
		if p.ID != personID {
			people = append(people, *p)
		}
	}
	sort.Slice(people, func(i, j int) bool { return people[i].ID < people[j].ID })
	if suggestionFollows != nil {
		filtered := people[:0]
		for _, p := range people {
			if !suggestionFollows.edges[[2]uint{personID, p.ID}] {
				filtered = append(filtered, p)
			}
		}
		people = filtered
	}
	if len(people) > limit {
		people = people[:limit]
	}
	return people, nil
}

// suggestionFollows wires the follow fake into the person fake's
// Suggestions query, mirroring the SQL NOT IN subquery.
var suggestionFollows *fakeFollowRepo

func (r *fakeFollowRepo) Toggle(followerID, followeeID uint) (bool, error) {
	key := [2]uint{followerID, followeeID}
	if r.edges[key] {
		delete(r.edges, key)
		return false, nil
	}
	r.edges[key] = true
	return true, nil
}

func (r *fakeFollowRepo) IsFollowing(followerID, followeeID uint) (bool, error) {
	return r.edges[[2]uint{followerID, followeeID}], nil
}

func (r *fakeFollowRepo) GetFollowersCount(personID uint) (int64, error) {
	var count int64
	for key := range r.edges {
		if key[1] == personID {
			count++
		}
	}
	return count, nil
}

func (r *fakeFollowRepo) GetFollowingCount(personID uint) (int64, error) {
	var count int64
	for key := range r.edges {
		if key[0] == personID {
			count++
		}
	}
	return count, nil
}

func (r *fakeFollowRepo) GetFolloweeUsernames(personID uint) ([]string, error) {
	var usernames []string
	for key := range r.edges {
		if key[0] == personID {
			if p, err := r.people.GetPersonByID(key[1]); err == nil {
				usernames = append(usernames, p.Username)
			}
		}
	}
	sort.Strings(usernames)
	return usernames, nil
}

type fakeLikeRepo struct {
	likes map[string]map[uint]bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[string]map[uint]bool{}}
}

func (r *fakeLikeRepo) Toggle(postID string, personID uint) (bool, error) {
	if r.likes[postID] == nil {
		r.likes[postID] = map[uint]bool{}
	}
	if r.likes[postID][personID] {
		delete(r.likes[postID], personID)
		return false, nil
	}
	r.likes[postID][personID] = true
	return true, nil
}

func (r *fakeLikeRepo) HasLiked(postID string, personID uint) (bool, error) {
	return r.likes[postID][personID], nil
}

func (r *fakeLikeRepo) GetLikesCount(postID string) (int64, error) {
	return int64(len(r.likes[postID])), nil
}

func (r *fakeLikeRepo) DeleteByPostID(postID string) error {
	delete(r.likes, postID)
	return nil
}

type fakeCommentRepo struct {
	nextID   uint
	comments []models.Comment
	people   *fakePersonRepo
}

func newFakeCommentRepo(people *fakePersonRepo) *fakeCommentRepo {
	return &fakeCommentRepo{people: people}
}

func (r *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	r.nextID++
	comment.ID = r.nextID
	comment.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Second)
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(id uint) (*models.Comment, error) {
	for i := range r.comments {
		if r.comments[i].ID == id {
			comment := r.comments[i]
			return &comment, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCommentRepo) GetPageByPostID(postID string, offset, limit int) ([]models.CommentView, error) {
	var views []models.CommentView
	for _, comment := range r.comments {
		if comment.PostID != postID {
			continue
		}
		author, err := r.people.GetPersonByID(comment.AuthorID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.CommentView{
			ID:        comment.ID,
			Author:    author.Username,
			Photo:     author.Photo,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].CreatedAt.After(views[j].CreatedAt) })
	if offset >= len(views) {
		return nil, nil
	}
	end := offset + limit
	if end > len(views) {
		end = len(views)
	}
	return views[offset:end], nil
}

func (r *fakeCommentRepo) GetCommentsCount(postID string) (int64, error) {
	var count int64
	for _, comment := range r.comments {
		if comment.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (r *fakeCommentRepo) UpdateComment(comment *models.Comment) error {
	for i := range r.comments {
		if r.comments[i].ID == comment.ID {
			r.comments[i] = *comment
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeCommentRepo) DeleteComment(id uint) error {
	for i := range r.comments {
		if r.comments[i].ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeCommentRepo) DeleteByPostID(postID string) error {
	kept := r.comments[:0]
	for _, comment := range r.comments {
		if comment.PostID != postID {
			kept = append(kept, comment)
		}
	}
	r.comments = kept
	return nil
}

type fakePostRepo struct {
	posts map[string]*models.Post
	clock time.Time
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts: map[string]*models.Post{},
		clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	r.clock = r.clock.Add(time.Minute)
	post.CreatedAt = r.clock
	post.UpdatedAt = r.clock
	r.posts[post.ID.Hex()] = post
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	if post, ok := r.posts[id]; ok {
		copied := *post
		return &copied, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakePostRepo) GetPostsByUploader(_ context.Context, username string, skip, limit int64) ([]models.Post, error) {
	return r.page(func(p *models.Post) bool { return p.Uploader == username }, skip, limit), nil
}

func (r *fakePostRepo) GetPostsCountByUploader(_ context.Context, username string) (int64, error) {
	return r.count(func(p *models.Post) bool { return p.Uploader == username }), nil
}

func (r *fakePostRepo) GetPostsByUploaders(_ context.Context, usernames []string, skip, limit int64) ([]models.Post, error) {
	set := map[string]bool{}
	for _, u := range usernames {
		set[u] = true
	}
	return r.page(func(p *models.Post) bool { return set[p.Uploader] }, skip, limit), nil
}

func (r *fakePostRepo) GetPostsCountByUploaders(_ context.Context, usernames []string) (int64, error) {
	set := map[string]bool{}
	for _, u := range usernames {
		set[u] = true
	}
	return r.count(func(p *models.Post) bool { return set[p.Uploader] }), nil
}

func (r *fakePostRepo) UpdatePost(_ context.Context, post *models.Post) error {
	if _, ok := r.posts[post.ID.Hex()]; !ok {
		return apperrors.ErrNotFound
	}
	copied := *post
	r.posts[post.ID.Hex()] = &copied
	return nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) page(match func(*models.Post) bool, skip, limit int64) []models.Post {
	var posts []models.Post
	for _, post := range r.posts {
		if match(post) {
			posts = append(posts, *post)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	if skip >= int64(len(posts)) {
		return nil
	}
	end := skip + limit
	if end > int64(len(posts)) {
		end = int64(len(posts))
	}
	return posts[skip:end]
}

func (r *fakePostRepo) count(match func(*models.Post) bool) int64 {
	var count int64
	for _, post := range r.posts {
		if match(post) {
			count++
		}
	}
	return count
}

type fakeNotificationRepo struct {
	nextID        uint
	notifications []models.Notification
}

func (r *fakeNotificationRepo) CreateNotification(notification *models.Notification) error {
	r.nextID++
	notification.ID = r.nextID
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepo) GetNotificationByID(id uint) (*models.Notification, error) {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			notification := r.notifications[i]
			return &notification, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeNotificationRepo) GetPageByRecipient(recipientID uint, offset, limit int) ([]models.Notification, error) {
	var page []models.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			page = append(page, n)
		}
	}
	if offset >= len(page) {
		return nil, nil
	}
	end := offset + limit
	if end > len(page) {
		end = len(page)
	}
	return page[offset:end], nil
}

func (r *fakeNotificationRepo) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(id uint) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// fixture wires the fakes into the three services under test.
type fixture struct {
	people        *fakePersonRepo
	follows       *fakeFollowRepo
	likes         *fakeLikeRepo
	comments      *fakeCommentRepo
	posts         *fakePostRepo
	notifications *fakeNotificationRepo
	graph         *GraphService
	content       *ContentService
	feed          *FeedService
}

func newFixture() *fixture {
	people := newFakePersonRepo()
	follows := newFakeFollowRepo(people)
	suggestionFollows = follows
	likes := newFakeLikeRepo()
	comments := newFakeCommentRepo(people)
	posts := newFakePostRepo()
	notifications := &fakeNotificationRepo{}
	logger := zap.NewNop()

	return &fixture{
		people:        people,
		follows:       follows,
		likes:         likes,
		comments:      comments,
		posts:         posts,
		notifications: notifications,
		graph:         NewGraphService(people, follows, likes, posts, notifications, logger),
		content:       NewContentService(people, posts, comments, likes, notifications, logger),
		feed:          NewFeedService(people, follows, likes, comments, posts, DefaultFeedConfig()),
	}
}

func (f *fixture) addPerson(username string) *models.Person {
	person := &models.Person{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hash",
		Firstname: "Test",
		Lastname:  "User",
	}
	if err := f.people.CreatePerson(person); err != nil {
		panic(err)
	}
	return person
}

func createPostRequest(image, description string) models.CreatePostRequest {
	return models.CreatePostRequest{Image: image, Description: description}
}

func updatePostRequest(req models.CreatePostRequest) models.UpdatePostRequest {
	return models.UpdatePostRequest{Image: req.Image, Description: req.Description, Hashtags: req.Hashtags}
}

func (f *fixture) addPost(uploader, image string) *models.Post {
	post := &models.Post{Uploader: uploader, Image: image, Description: "desc"}
	if err := f.posts.CreatePost(context.Background(), post); err != nil {
		panic(err)
	}
	return post
}
