package storage

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// taggingExpiry bounds the signed tagging requests; they are sent immediately.
const taggingExpiry = time.Minute

// Client defines the interface for storage operations.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// PutObject uploads an object.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// ListObjects lists objects in a bucket.
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	// GetObjectTagging fetches the raw Tagging XML document of an object.
	GetObjectTagging(ctx context.Context, bucketName, objectName string) ([]byte, error)
	// PutObjectTagging replaces the tag set of an object with a raw Tagging XML document.
	PutObjectTagging(ctx context.Context, bucketName, objectName string, document []byte) error
	// PresignedGetObject signs a time-limited GET URL for an object.
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// NewClient creates a new Minio client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// Minio connects lazily; with Region set, presigning stays local as well.

	return &minioClient{
		Client: mc,
		http:   &http.Client{Transport: transport},
	}, nil
}

// minioClient is the SDK client with raw object tagging.
//
// minio-go's typed tag API validates keys and values against
// [a-zA-Z0-9+-._:/@ =] when encoding and decoding, which rules out
// comma separated tag strings. Tagging requests are therefore signed with
// Presign and their documents exchanged as XML.
type minioClient struct {
	*minio.Client
	http *http.Client
}

func (c *minioClient) GetObjectTagging(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	return c.tagging(ctx, http.MethodGet, bucketName, objectName, nil)
}

func (c *minioClient) PutObjectTagging(ctx context.Context, bucketName, objectName string, document []byte) error {
	_, err := c.tagging(ctx, http.MethodPut, bucketName, objectName, document)
	return err
}

func (c *minioClient) tagging(ctx context.Context, method, bucketName, objectName string, body []byte) ([]byte, error) {
	u, err := c.Presign(ctx, method, bucketName, objectName, taggingExpiry, url.Values{"tagging": []string{""}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if body != nil {
		sum := md5.Sum(body)
		req.Header.Set("Content-MD5", base64.StdEncoding.EncodeToString(sum[:]))
		req.Header.Set("Content-Type", "application/xml")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errorResponse(resp, data, bucketName, objectName)
	}
	return data, nil
}

// errorResponse decodes an S3 error body so classify sees the S3 code.
func errorResponse(resp *http.Response, body []byte, bucketName, objectName string) error {
	errResp := minio.ErrorResponse{}
	if err := xml.Unmarshal(body, &errResp); err != nil || errResp.Code == "" {
		errResp = minio.ErrorResponse{
			Code:    resp.Status,
			Message: http.StatusText(resp.StatusCode),
		}
	}
	if errResp.BucketName == "" {
		errResp.BucketName = bucketName
	}
	if errResp.Key == "" {
		errResp.Key = objectName
	}
	errResp.StatusCode = resp.StatusCode
	return errResp
}
