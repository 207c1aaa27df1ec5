package sink

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/htmlcomponent/internal/errors"
	"github.com/vango-dev/htmlcomponent/pkg/component"
)

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func page() *component.Element {
	return component.MustMake("p", nil, component.Text("hi"))
}

func TestPrintToWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, Print(context.Background(), w, "ignored", page(), "class lead"))
	assert.Equal(t, `<p class="lead">hi</p>`, buf.String())
}

func TestPrintReportsCompileError(t *testing.T) {
	var buf bytes.Buffer
	err := Print(context.Background(), NewWriter(&buf), "", page(), "broken")
	assert.ErrorIs(t, err, component.ErrInvalidAttribute)
	assert.Empty(t, buf.String())
}

func TestWriterHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := NewWriter(&buf).Publish(ctx, "", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilePublish(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(filepath.Join(dir, "site"))
	require.NoError(t, err)

	require.NoError(t, Print(context.Background(), f, "blog/post.html", page()))
	data, err := os.ReadFile(filepath.Join(dir, "site", "blog", "post.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))

	// Overwrite in place.
	require.NoError(t, f.Publish(context.Background(), "blog/post.html", []byte("new")))
	data, _ = os.ReadFile(filepath.Join(dir, "site", "blog", "post.html"))
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(filepath.Join(dir, "site", "blog"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should not remain")
}

func TestFileRejectsEscapes(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)
	for _, name := range []string{"", ".", "../x.html", "a/../../x.html", "/etc/passwd"} {
		err := f.Publish(context.Background(), name, []byte("x"))
		assert.Equal(t, errors.CodeSinkTarget, errors.CodeOf(err), "name %q", name)
	}
}

func TestS3Publish(t *testing.T) {
	client := &fakeS3{}
	s := NewS3(client, "site", "pages/").WithCacheControl("max-age=60")

	require.NoError(t, Print(context.Background(), s, "/index.html", page()))
	require.Len(t, client.inputs, 1)

	in := client.inputs[0]
	assert.Equal(t, "site", aws.ToString(in.Bucket))
	assert.Equal(t, "pages/index.html", aws.ToString(in.Key))
	assert.Equal(t, "text/html; charset=utf-8", aws.ToString(in.ContentType))
	assert.Equal(t, "max-age=60", aws.ToString(in.CacheControl))
	assert.Equal(t, int64(9), aws.ToInt64(in.ContentLength))
	assert.Equal(t, "<p>hi</p>", string(client.bodies[0]))
}

func TestS3Errors(t *testing.T) {
	client := &fakeS3{err: stderrors.New("access denied")}
	s := NewS3(client, "site", "")

	err := s.Publish(context.Background(), "a.html", []byte("x"))
	assert.Equal(t, errors.CodeSinkUpload, errors.CodeOf(err))
	assert.ErrorContains(t, err, "access denied")

	err = NewS3(&fakeS3{}, "site", "dir/").Publish(context.Background(), "", []byte("x"))
	assert.Equal(t, errors.CodeSinkTarget, errors.CodeOf(err))
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want Target
	}{
		{"-", Target{Stdout: true}},
		{"", Target{Stdout: true}},
		{"out/index.html", Target{Dir: "out", Name: "index.html"}},
		{"index.html", Target{Dir: ".", Name: "index.html"}},
		{"s3://site/pages/index.html", Target{Bucket: "site", Key: "pages/index.html"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTarget(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"s3://", "s3://bucket", "s3://bucket/", "s3:///key", "out/"} {
		_, err := ParseTarget(bad)
		assert.Equal(t, errors.CodeSinkTarget, errors.CodeOf(err), "target %q", bad)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	target, err := ParseTarget(filepath.Join(dir, "index.html"))
	require.NoError(t, err)

	s, name, err := Open(target, nil, S3Options{})
	require.NoError(t, err)
	assert.Equal(t, "index.html", name)
	require.NoError(t, Print(context.Background(), s, name, page()))
	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))

	client := &fakeS3{}
	target, err = ParseTarget("s3://site/a/b.html")
	require.NoError(t, err)
	s, name, err = Open(target, client, S3Options{Prefix: "v1/", ContentType: "text/plain"})
	require.NoError(t, err)
	require.NoError(t, Print(context.Background(), s, name, page()))
	require.Len(t, client.inputs, 1)
	assert.Equal(t, "v1/a/b.html", aws.ToString(client.inputs[0].Key))
	assert.Equal(t, "text/plain", aws.ToString(client.inputs[0].ContentType))
	assert.Equal(t, "s3://site/a/b.html", target.String())
}

func TestNewS3Client(t *testing.T) {
	c := NewS3Client(S3Options{Region: "eu-west-1", Endpoint: "http://localhost:9000"})
	opts := c.Options()
	assert.Equal(t, "eu-west-1", opts.Region)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	_, err := envCredentials(context.Background())
	assert.Error(t, err)

	t.Setenv("AWS_ACCESS_KEY_ID", "id")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	creds, err := envCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}
