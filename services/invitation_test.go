package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"wedinvite/media"
	"wedinvite/models"
	"wedinvite/storage"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testFile struct {
	name    string
	content string
}

// fileHeaders builds real multipart.FileHeader values by writing and
// re-parsing a multipart body, preserving part order.
func fileHeaders(t *testing.T, field string, files ...testFile) []*multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		fw, err := w.CreateFormFile(field, f.name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err = fw.Write([]byte(f.content)); err != nil {
			t.Fatalf("writing part: %v", err)
		}
	}
	w.Close()
	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	return form.File[field]
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.sqlite")), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err = models.Migrate(db); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return db
}

func newTestInvitationService(t *testing.T) (*InvitationService, string) {
	t.Helper()
	uploadDir := t.TempDir()
	ingest := media.NewIngest(storage.NewDiskStorage(uploadDir))
	return NewInvitationService(newTestDB(t), ingest), uploadDir
}

func validInput(photos ...testFile) func(t *testing.T) CreateInvitationInput {
	return func(t *testing.T) CreateInvitationInput {
		return CreateInvitationInput{
			BrideNames: "Amy",
			GroomNames: "Ben",
			Date:       1700000000000,
			Venue:      "Garden Hall",
			TemplateID: "template1",
			Photos:     fileHeaders(t, "photos", photos...),
		}
	}
}

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		name   string
		bride  string
		groom  string
		want   string
	}{
		{"simple", "Amy", "Ben", "amy-ben"},
		{"spaces", "Mary Jane", "John Paul", "mary-jane-john-paul"},
		{"punctuation", "Amy!", "Ben?", "amy-ben"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeSlug(tt.bride, tt.groom); got != tt.want {
				t.Errorf("MakeSlug(%q, %q) = %q, want %q", tt.bride, tt.groom, got, tt.want)
			}
		})
	}
}

func TestMakeSlugCharset(t *testing.T) {
	safe := regexp.MustCompile(`^[a-z0-9-]+$`)
	inputs := [][2]string{
		{"Émilie", "Jean-Luc"},
		{"Zoë", "Søren"},
		{"  Amy  ", "Ben"},
	}
	for _, in := range inputs {
		got := MakeSlug(in[0], in[1])
		if !safe.MatchString(got) {
			t.Errorf("MakeSlug(%q, %q) = %q, contains characters outside [a-z0-9-]", in[0], in[1], got)
		}
		if again := MakeSlug(in[0], in[1]); again != got {
			t.Errorf("MakeSlug not deterministic: %q vs %q", got, again)
		}
	}
}

func TestInvitationService_Create(t *testing.T) {
	service, uploadDir := newTestInvitationService(t)

	invitation, err := service.Create(context.Background(), validInput(testFile{"photoA.jpg", "photo A bytes"})(t))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if invitation.ID == 0 {
		t.Error("expected a generated id")
	}
	if invitation.Slug != "amy-ben" {
		t.Errorf("slug = %q, want %q", invitation.Slug, "amy-ben")
	}
	if len(invitation.Photos) != 1 || !strings.HasPrefix(invitation.Photos[0], "/uploads/photos-") {
		t.Errorf("unexpected photos: %v", invitation.Photos)
	}
	if invitation.MusicURL != nil {
		t.Errorf("musicUrl = %v, want nil", *invitation.MusicURL)
	}
	if invitation.CreatedAt == 0 || invitation.UpdatedAt == 0 {
		t.Error("expected creation timestamps to be set")
	}
	// The file must be durable under the upload dir
	stored := filepath.Join(uploadDir, strings.TrimPrefix(invitation.Photos[0], "/uploads/"))
	content, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("stored photo missing: %v", err)
	}
	if string(content) != "photo A bytes" {
		t.Errorf("stored photo content = %q", content)
	}
}

func TestInvitationService_CreateWithMusic(t *testing.T) {
	service, _ := newTestInvitationService(t)

	input := validInput(testFile{"photoA.jpg", "a"})(t)
	input.Music = fileHeaders(t, "musicFile", testFile{"song.mp3", "mp3 bytes"})[0]
	invitation, err := service.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if invitation.MusicURL == nil || !strings.HasPrefix(*invitation.MusicURL, "/uploads/musicFile-") {
		t.Errorf("unexpected musicUrl: %v", invitation.MusicURL)
	}
}

func TestInvitationService_PhotoOrderRoundTrip(t *testing.T) {
	service, uploadDir := newTestInvitationService(t)

	contents := []string{"first photo", "second photo", "third photo"}
	input := validInput(
		testFile{"p1.jpg", contents[0]},
		testFile{"p2.jpg", contents[1]},
		testFile{"p3.jpg", contents[2]},
	)(t)
	created, err := service.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	loaded, err := service.GetBySlug(context.Background(), created.Slug)
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if len(loaded.Photos) != 3 {
		t.Fatalf("photos length = %d, want 3", len(loaded.Photos))
	}
	for i, url := range loaded.Photos {
		if url != created.Photos[i] {
			t.Errorf("photo %d: %q differs from created %q", i, url, created.Photos[i])
		}
		data, err := os.ReadFile(filepath.Join(uploadDir, strings.TrimPrefix(url, "/uploads/")))
		if err != nil {
			t.Fatalf("reading photo %d: %v", i, err)
		}
		if string(data) != contents[i] {
			t.Errorf("photo %d content = %q, want %q - upload order not preserved", i, data, contents[i])
		}
	}
}

func TestInvitationService_CreateValidation(t *testing.T) {
	eightPhotos := make([]testFile, 8)
	for i := range eightPhotos {
		eightPhotos[i] = testFile{name: "p.jpg", content: "x"}
	}
	tests := []struct {
		name    string
		mutate  func(t *testing.T, in *CreateInvitationInput)
		wantErr ValidationError
	}{
		{"missing bride", func(t *testing.T, in *CreateInvitationInput) { in.BrideNames = " " }, ErrBrideNamesRequired},
		{"missing groom", func(t *testing.T, in *CreateInvitationInput) { in.GroomNames = "" }, ErrGroomNamesRequired},
		{"missing date", func(t *testing.T, in *CreateInvitationInput) { in.Date = 0 }, ErrDateRequired},
		{"missing venue", func(t *testing.T, in *CreateInvitationInput) { in.Venue = "" }, ErrVenueRequired},
		{"unknown template", func(t *testing.T, in *CreateInvitationInput) { in.TemplateID = "template9" }, ErrTemplateUnknown},
		{"no photos", func(t *testing.T, in *CreateInvitationInput) { in.Photos = nil }, ErrNoPhotos},
		{"eight photos", func(t *testing.T, in *CreateInvitationInput) {
			in.Photos = fileHeaders(t, "photos", eightPhotos...)
		}, ErrTooManyPhotos},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, uploadDir := newTestInvitationService(t)
			input := validInput(testFile{"photoA.jpg", "a"})(t)
			tt.mutate(t, &input)

			_, err := service.Create(context.Background(), input)
			var validation ValidationError
			if !errors.As(err, &validation) || validation != tt.wantErr {
				t.Fatalf("Create error = %v, want %v", err, tt.wantErr)
			}
			// Rejection happens before any file is written
			if names := dirNames(t, uploadDir); len(names) != 0 {
				t.Errorf("upload dir not empty after rejected create: %v", names)
			}
		})
	}
}

func TestInvitationService_SlugCollision(t *testing.T) {
	service, uploadDir := newTestInvitationService(t)

	if _, err := service.Create(context.Background(), validInput(testFile{"a.jpg", "a"})(t)); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	filesAfterFirst := len(dirNames(t, uploadDir))

	_, err := service.Create(context.Background(), validInput(testFile{"b.jpg", "b"})(t))
	if !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("second Create error = %v, want ErrSlugTaken", err)
	}
	// The failed attempt's files were rolled back
	if got := len(dirNames(t, uploadDir)); got != filesAfterFirst {
		t.Errorf("upload dir has %d files after failed create, want %d", got, filesAfterFirst)
	}
}

func TestInvitationService_GetBySlugNotFound(t *testing.T) {
	service, _ := newTestInvitationService(t)

	_, err := service.GetBySlug(context.Background(), "never-created")
	if !errors.Is(err, ErrInvitationNotFound) {
		t.Errorf("GetBySlug error = %v, want ErrInvitationNotFound", err)
	}
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	names := []string{}
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
