package storage

import (
	"io"
	"net/http"

	"wedinvite/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   string
	s3Client *s3.S3
	uploader *s3manager.Uploader
}

func NewS3Storage(bucket string) (*S3Storage, error) {
	awsConfig := aws.Config{
		Region: aws.String(config.S3_REGION),
	}
	if config.S3_ACCESS_KEY != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.S3_ACCESS_KEY, config.S3_SECRET_KEY, "")
	}
	if config.S3_ENDPOINT != "" {
		awsConfig.Endpoint = aws.String(config.S3_ENDPOINT)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(&awsConfig)
	if err != nil {
		return nil, err
	}
	client := s3.New(sess)
	return &S3Storage{
		bucket:   bucket,
		s3Client: client,
		uploader: s3manager.NewUploaderWithClient(client),
	}, nil
}

type countingReader struct {
	reader io.Reader
	count  int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	c.count += int64(n)
	return n, err
}

func (s *S3Storage) Save(name string, reader io.Reader) (int64, error) {
	counting := &countingReader{reader: reader}
	_, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket: &s.bucket,
		Key:    aws.String(name),
		Body:   counting,
	})
	if err != nil {
		return 0, err
	}
	return counting.count, nil
}

func (s *S3Storage) Open(name string) (io.ReadCloser, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (s *S3Storage) Serve(name string, request *http.Request, writer http.ResponseWriter) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(name),
	})
	if err != nil {
		if awsError, ok := err.(awserr.Error); ok && awsError.Code() == s3.ErrCodeNoSuchKey {
			http.NotFound(writer, request)
			return
		}
		http.Error(writer, "storage error", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()
	if resp.ContentType != nil {
		writer.Header().Set("Content-Type", *resp.ContentType)
	}
	_, _ = io.Copy(writer, resp.Body)
}

func (s *S3Storage) Delete(name string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(name),
	})
	return err
}

func (s *S3Storage) Exists(name string) bool {
	_, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(name),
	})
	return err == nil
}
