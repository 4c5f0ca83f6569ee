// Package deploy pushes a generated site to S3 and fronts it with a
// CloudFront distribution.
package deploy

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// Site deploys the contents of Dir to Bucket.
type Site struct {
	Bucket string
	Dir    string

	log      *zap.Logger
	uploader *manager.Uploader
	cf       *cloudfront.Client
}

// New loads the AWS configuration once and returns a Site ready to push.
func New(ctx context.Context, bucket, dir string, log *zap.Logger) (*Site, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Site{
		Bucket:   bucket,
		Dir:      dir,
		log:      log,
		uploader: manager.NewUploader(s3.NewFromConfig(cfg)),
		cf:       cloudfront.NewFromConfig(cfg),
	}, nil
}

// Push walks the site directory and uploads every file with its
// Content-Type set from the file extension.
func (s *Site) Push(ctx context.Context) error {
	return filepath.Walk(s.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(s.Dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(relPath)

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer file.Close()

		_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.Bucket),
			Key:         aws.String(key),
			Body:        file,
			ContentType: aws.String(contentTypeFor(path)),
		})
		if err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}

		s.log.Info("uploaded", zap.String("key", key), zap.String("bucket", s.Bucket))
		return nil
	})
}

// EnsureDistribution returns the ID of the CloudFront distribution fronting
// the bucket, creating one if none exists.
func (s *Site) EnsureDistribution(ctx context.Context) (string, error) {
	distID, err := s.findDistribution(ctx)
	if err != nil {
		return "", err
	}
	if distID != "" {
		s.log.Info("distribution exists", zap.String("id", distID))
		return distID, nil
	}

	originDomain := fmt.Sprintf("%s.s3.amazonaws.com", s.Bucket)
	callerReference := fmt.Sprintf("freshly-%d", time.Now().Unix())

	input := &cloudfront.CreateDistributionInput{
		DistributionConfig: &cftypes.DistributionConfig{
			CallerReference: aws.String(callerReference),
			Comment:         aws.String(fmt.Sprintf("Freshly site for bucket %s", s.Bucket)),
			Enabled:         aws.Bool(true),
			DefaultCacheBehavior: &cftypes.DefaultCacheBehavior{
				TargetOriginId:       aws.String(s.Bucket),
				ViewerProtocolPolicy: cftypes.ViewerProtocolPolicyRedirectToHttps,
				TrustedSigners:       &cftypes.TrustedSigners{Enabled: aws.Bool(false), Quantity: aws.Int32(0)},
				ForwardedValues: &cftypes.ForwardedValues{
					QueryString: aws.Bool(false),
					Cookies:     &cftypes.CookiePreference{Forward: cftypes.ItemSelectionNone},
				},
				MinTTL: aws.Int64(0),
			},
			Origins: &cftypes.Origins{
				Quantity: aws.Int32(1),
				Items: []cftypes.Origin{
					{
						Id:         aws.String(s.Bucket),
						DomainName: aws.String(originDomain),
						S3OriginConfig: &cftypes.S3OriginConfig{
							OriginAccessIdentity: aws.String(""),
						},
					},
				},
			},
			PriceClass:        cftypes.PriceClassPriceClass100,
			DefaultRootObject: aws.String("index.html"),
			Restrictions: &cftypes.Restrictions{
				GeoRestriction: &cftypes.GeoRestriction{
					RestrictionType: cftypes.GeoRestrictionTypeNone,
					Quantity:        aws.Int32(0),
				},
			},
			ViewerCertificate: &cftypes.ViewerCertificate{
				CloudFrontDefaultCertificate: aws.Bool(true),
				MinimumProtocolVersion:       cftypes.MinimumProtocolVersionTLSv12016,
				CertificateSource:            cftypes.CertificateSourceCloudfront,
			},
		},
	}

	resp, err := s.cf.CreateDistribution(ctx, input)
	if err != nil {
		return "", fmt.Errorf("create distribution: %w", err)
	}

	s.log.Info("created distribution",
		zap.String("id", aws.ToString(resp.Distribution.Id)),
		zap.String("domain", aws.ToString(resp.Distribution.DomainName)))
	return aws.ToString(resp.Distribution.Id), nil
}

// Invalidate issues a full-path invalidation so the fresh upload is served
// immediately.
func (s *Site) Invalidate(ctx context.Context, distID string) error {
	_, err := s.cf.CreateInvalidation(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(distID),
		InvalidationBatch: &cftypes.InvalidationBatch{
			CallerReference: aws.String(fmt.Sprintf("freshly-inv-%d", time.Now().Unix())),
			Paths: &cftypes.Paths{
				Quantity: aws.Int32(1),
				Items:    []string{"/*"},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("invalidate distribution %s: %w", distID, err)
	}
	s.log.Info("invalidated distribution", zap.String("id", distID))
	return nil
}

func (s *Site) findDistribution(ctx context.Context) (string, error) {
	expectedOriginDomain := fmt.Sprintf("%s.s3.amazonaws.com", s.Bucket)
	paginator := cloudfront.NewListDistributionsPaginator(s.cf, &cloudfront.ListDistributionsInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("list distributions: %w", err)
		}
		for _, dist := range page.DistributionList.Items {
			for _, origin := range dist.Origins.Items {
				if aws.ToString(origin.DomainName) == expectedOriginDomain {
					return aws.ToString(dist.Id), nil
				}
			}
		}
	}
	return "", nil
}

func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
