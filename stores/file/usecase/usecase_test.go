package usecase

import (
	"io"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain/file"
	"github.com/auton-labs/goapi/service/pinata"
	"github.com/auton-labs/goapi/service/pinata/mocks"
)

var mockCtx = ctx.Background()

type fileSuite struct {
	suite.Suite

	pinata *mocks.Service
	im     file.Usecase
}

func TestFileSuite(t *testing.T) {
	suite.Run(t, new(fileSuite))
}

func (s *fileSuite) SetupTest() {
	s.pinata = &mocks.Service{}
	s.im = New(s.pinata)
}

func (s *fileSuite) TestUpload() {
	s.pinata.On("Pin", mock.Anything, mock.Anything, "png").Run(func(args mock.Arguments) {
		body, err := ioutil.ReadAll(args.Get(1).(io.Reader))
		s.Require().NoError(err)
		s.Equal([]byte("auton"), body)
	}).Return("QmAvatarCid", nil).Once()

	cid, err := s.im.Upload(mockCtx, "data:image/png;base64,YXV0b24=", pinata.PinOptions{})
	s.Require().NoError(err)
	s.Equal("QmAvatarCid", cid)
	s.pinata.AssertExpectations(s.T())
}

func (s *fileSuite) TestUploadWithPinOptions() {
	meta := pinata.PinataMetadata{Name: "creator banner"}

	s.pinata.On("Pin", mock.Anything, mock.Anything, "jpeg", mock.Anything).Run(func(args mock.Arguments) {
		applied, err := pinata.GetPinOptions(args.Get(3).(pinata.Options))
		s.Require().NoError(err)
		s.Require().NotNil(applied.Metadata)
		s.Equal("creator banner", applied.Metadata.Name)
	}).Return("QmBannerCid", nil).Once()

	cid, err := s.im.Upload(mockCtx, "data:image/jpeg;base64,YXV0b24=", pinata.PinOptions{Metadata: &meta})
	s.Require().NoError(err)
	s.Equal("QmBannerCid", cid)
	s.pinata.AssertExpectations(s.T())
}

func (s *fileSuite) TestUploadRejectsNonImageData() {
	_, err := s.im.Upload(mockCtx, "data:text/plain;base64,YXV0b24=", pinata.PinOptions{})
	s.Error(err)
	s.pinata.AssertNotCalled(s.T(), "Pin")
}

func (s *fileSuite) TestUploadPinFails() {
	s.pinata.On("Pin", mock.Anything, mock.Anything, "png").Return("", pinata.ErrRequestFailed).Once()

	_, err := s.im.Upload(mockCtx, "data:image/png;base64,YXV0b24=", pinata.PinOptions{})
	s.Equal(pinata.ErrRequestFailed, err)
}

func (s *fileSuite) TestUploadJson() {
	manifest := map[string]interface{}{
		"title": "Field Notes #7",
		"price": 1000000,
	}

	s.pinata.On("PinJson", mock.Anything, manifest).Return("QmManifestCid", nil).Once()

	cid, err := s.im.UploadJson(mockCtx, manifest, pinata.PinOptions{})
	s.Require().NoError(err)
	s.Equal("QmManifestCid", cid)
	s.pinata.AssertExpectations(s.T())
}

func Test_parseImgData(t *testing.T) {
	im := &impl{}

	tests := []struct {
		name    string
		data    string
		wantExt string
		wantErr bool
	}{
		{name: "png", data: "data:image/png;base64,YXV0b24=", wantExt: "png"},
		{name: "jpeg", data: "data:image/jpeg;base64,YXV0b24=", wantExt: "jpeg"},
		{name: "wrong prefix", data: "https://cdn.auton.xyz/avatar.png", wantErr: true},
		{name: "header shorter than search window", data: "data:image/png", wantErr: true},
		{name: "suffix past search window", data: "data:image/" + strings.Repeat("x", 60) + ";base64,YXV0b24=", wantErr: true},
		{name: "bad base64 payload", data: "data:image/png;base64,not base64!", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, ext, err := im.parseImgData(tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, ext)
			body, err := ioutil.ReadAll(reader)
			require.NoError(t, err)
			assert.Equal(t, []byte("auton"), body)
		})
	}
}
