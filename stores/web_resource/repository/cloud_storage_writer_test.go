package repository

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
	"google.golang.org/api/iterator"

	bCtx "github.com/auton-labs/goapi/base/ctx"
)

type cloudStorageTestSuite struct {
	suite.Suite
	client        *storage.Client
	bucketName    string
	bucketUrl     string
	testingTeaser []byte
	testingFolder string
}

func (suite *cloudStorageTestSuite) SetupSuite() {
	ctx := bCtx.Background()
	client, err := storage.NewClient(ctx)
	suite.NoError(err)

	suite.client = client
	suite.bucketName = "auton-public"
	// trailing slash matters, Store resolves object paths against it
	suite.bucketUrl = "https://storage.googleapis.com/auton-public/"
	suite.testingTeaser = []byte("The first three hundred characters of the essay, free for everyone...")
	suite.testingFolder = "testing"
}

func (suite *cloudStorageTestSuite) TearDownSuite() {
	ctx := bCtx.Background()
	query := &storage.Query{Prefix: suite.testingFolder}
	bucket := suite.client.Bucket(suite.bucketName)
	it := bucket.Objects(ctx, query)
	for {
		attr, err := it.Next()
		if err == iterator.Done {
			break
		}
		suite.NoError(err)
		err = bucket.Object(attr.Name).Delete(ctx)
		suite.NoError(err)
	}
	err := suite.client.Close()
	suite.NoError(err)
}

func TestCloudStorageWriterRepo(t *testing.T) {
	t.Skip("requires google cloud storage auth")
	suite.Run(t, new(cloudStorageTestSuite))
}

func (suite *cloudStorageTestSuite) Test_cloudStorageWriterRepo_Store() {
	req := require.New(suite.T())
	ctx := bCtx.Background()

	contentPath := fmt.Sprintf("%s/previews/7.preview", suite.testingFolder)
	expectedUrl := suite.bucketUrl + contentPath
	cs, err := NewCloudStorageWriterRepo(&CloudStorageWriterRepoCfg{
		Client:     suite.client,
		BucketName: suite.bucketName,
		Timeout:    10 * time.Second,
		Url:        suite.bucketUrl,
	})
	req.NoError(err)
	url, err := cs.Store(ctx, contentPath, suite.testingTeaser, "text/plain; charset=utf-8")
	req.NoError(err)
	req.Equal(expectedUrl, url)

	body, err := httpGet(ctx, url)
	req.NoError(err)
	req.Equal(suite.testingTeaser, body)
}

func httpGet(ctx bCtx.Ctx, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, xerrors.Errorf("resp.StatusCode != 200")
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}
